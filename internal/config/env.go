package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix starts every environment variable the typewriter reads.
const EnvPrefix = "TYPEWRITER_"

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envSetting applies one environment variable to a Config.
type envSetting struct {
	name  string
	path  string
	apply func(c *Config, value string) error
}

var envSettings = []envSetting{
	{"WIDTH", "grid.width", intSetter(func(c *Config) *int { return &c.Grid.Width })},
	{"HEIGHT", "grid.height", intSetter(func(c *Config) *int { return &c.Grid.Height })},
	{"CAPACITY", "buffer.capacity", intSetter(func(c *Config) *int { return &c.Buffer.Capacity })},
	{"LAYOUT", "keyboard.layout", stringSetter(func(c *Config) *string { return &c.Keyboard.Layout })},
	{"LOG_LEVEL", "logging.level", stringSetter(func(c *Config) *string { return &c.Logging.Level })},
	{"LOG_FILE", "logging.file", stringSetter(func(c *Config) *string { return &c.Logging.File })},
	{"BELL", "display.bell", boolSetter(func(c *Config) *bool { return &c.Display.Bell })},
}

// EnvNames returns the recognized environment variables.
func EnvNames() []string {
	names := make([]string, len(envSettings))
	for i, s := range envSettings {
		names[i] = EnvPrefix + s.name
	}
	return names
}

// ApplyEnv overlays TYPEWRITER_* variables onto cfg. Empty values are
// treated as set. Every malformed value is reported.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	var errs []error
	for _, s := range envSettings {
		value, ok := lookup(EnvPrefix + s.name)
		if !ok {
			continue
		}
		if err := s.apply(cfg, value); err != nil {
			errs = append(errs, fmt.Errorf("%s%s (%s): %w", EnvPrefix, s.name, s.path, err))
		}
	}
	return errors.Join(errs...)
}

func intSetter(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func stringSetter(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, value string) error {
		*field(c) = strings.TrimSpace(value)
		return nil
	}
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}
