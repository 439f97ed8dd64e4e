package cliconfig

import (
	"fmt"

	"github.com/misalian/snaptime/pkg/seximal"
)

// Config holds CLI configuration for snaptime.
type Config struct {
	// Form names the output form: extended, basic, snap or span.
	Form string

	// Local renders the system time zone instead of UTC.
	Local bool

	// Watch keeps printing, re-rendering once per snap.
	Watch bool

	// Verbose enables debug-level logging.
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Form: seximal.FormExtended.String(),
	}
}

// Validate checks the configuration for errors and normalizes the form
// name to its canonical spelling.
func (c *Config) Validate() error {
	form, err := seximal.ParseForm(c.Form)
	if err != nil {
		return fmt.Errorf("invalid form: %w", err)
	}
	c.Form = form.String()
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
