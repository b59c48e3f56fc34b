package config

import (
	"strings"
	"testing"
)

func lookupMap(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(cfg, lookupMap(map[string]string{
		"TYPEWRITER_WIDTH":     "80",
		"TYPEWRITER_HEIGHT":    " 24 ",
		"TYPEWRITER_CAPACITY":  "512",
		"TYPEWRITER_LAYOUT":    "qwerty",
		"TYPEWRITER_LOG_LEVEL": "warn",
		"TYPEWRITER_LOG_FILE":  "/var/log/tw.log",
		"TYPEWRITER_BELL":      "false",
		"OTHER_WIDTH":          "3",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	want := Default()
	want.Grid = GridConfig{Width: 80, Height: 24}
	want.Buffer.Capacity = 512
	want.Keyboard.Layout = "qwerty"
	want.Logging = LoggingConfig{Level: "warn", File: "/var/log/tw.log"}
	want.Display.Bell = false
	if *cfg != *want {
		t.Errorf("ApplyEnv() = %+v, want %+v", cfg, want)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(cfg, lookupMap(map[string]string{
		"TYPEWRITER_WIDTH": "wide",
		"TYPEWRITER_BELL":  "maybe",
	}))
	if err == nil {
		t.Fatal("ApplyEnv() returned nil")
	}
	for _, name := range []string{"TYPEWRITER_WIDTH", "TYPEWRITER_BELL"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
	if cfg.Grid.Width != DefaultWidth {
		t.Errorf("malformed value changed Width to %d", cfg.Grid.Width)
	}
}

func TestEnvNames(t *testing.T) {
	names := EnvNames()
	if len(names) != 7 {
		t.Fatalf("EnvNames() returned %d names, want 7", len(names))
	}
	for _, n := range names {
		if !strings.HasPrefix(n, EnvPrefix) {
			t.Errorf("name %q lacks prefix", n)
		}
	}
}
