package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		changed map[string]bool
		want    Config
	}{
		{
			name: "no env leaves defaults",
			want: Config{Form: "extended"},
		},
		{
			name: "env values apply",
			env: map[string]string{
				"SNAPTIME_FORM":  "span",
				"SNAPTIME_LOCAL": "true",
				"SNAPTIME_WATCH": "1",
			},
			want: Config{Form: "span", Local: true, Watch: true},
		},
		{
			name: "changed flag wins over env",
			env: map[string]string{
				"SNAPTIME_FORM":  "span",
				"SNAPTIME_LOCAL": "true",
			},
			changed: map[string]bool{"form": true, "local": true},
			want:    Config{Form: "extended"},
		},
		{
			name: "non-truthy bool is false",
			env: map[string]string{
				"SNAPTIME_LOCAL": "yes",
			},
			want: Config{Form: "extended"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			ApplyEnvConfig(&cfg, tt.changed)
			if cfg != tt.want {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
