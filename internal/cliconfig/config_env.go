package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SNAPTIME_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("form", os.Getenv("SNAPTIME_FORM"), &cfg.Form)
	s.setBoolFromString("local", os.Getenv("SNAPTIME_LOCAL"), &cfg.Local)
	s.setBoolFromString("watch", os.Getenv("SNAPTIME_WATCH"), &cfg.Watch)
	s.setBoolFromString("verbose", os.Getenv("SNAPTIME_VERBOSE"), &cfg.Verbose)
}
