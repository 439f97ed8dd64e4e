package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeTempConfig(t, `
form = "span"
local = true
watch = false
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Form != "span" {
		t.Errorf("Form = %v, want span", fc.Form)
	}
	if fc.Local == nil || !*fc.Local {
		t.Error("Local = nil or false, want true")
	}
	if fc.Watch == nil || *fc.Watch {
		t.Error("Watch = nil or true, want explicit false")
	}
	if fc.Verbose != nil {
		t.Error("Verbose should be nil when omitted")
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	path := writeTempConfig(t, `form = [not toml`)
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() expected error for malformed TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	truthy := true

	tests := []struct {
		name    string
		fc      FileConfig
		changed map[string]bool
		want    Config
	}{
		{
			name: "file values apply when no flags set",
			fc:   FileConfig{Form: "basic", Local: &truthy},
			want: Config{Form: "basic", Local: true},
		},
		{
			name:    "changed flag wins over file",
			fc:      FileConfig{Form: "basic", Local: &truthy},
			changed: map[string]bool{"form": true},
			want:    Config{Form: "extended", Local: true},
		},
		{
			name: "empty file leaves defaults",
			fc:   FileConfig{},
			want: Config{Form: "extended"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyFileConfig(&cfg, tt.fc, tt.changed)
			if cfg != tt.want {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	path := writeTempConfig(t, "")
	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(t.TempDir(), "absent")) {
		t.Error("FileExists() = true for missing file")
	}
}
