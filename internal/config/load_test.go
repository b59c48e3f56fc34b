package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"typewriter.toml", FormatTOML, false},
		{"dir/Typewriter.TOML", FormatTOML, false},
		{"typewriter.yaml", FormatYAML, false},
		{"typewriter.yml", FormatYAML, false},
		{"typewriter.json", "", true},
		{"typewriter", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("error = %v, want ErrUnsupportedFormat", err)
			}
			if got != tt.want {
				t.Errorf("FormatFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "tw.toml", `
[grid]
width = 40

[keyboard]
layout = "qwerty"

[display]
bell = false
ink = "#000000"
origin_x = 3
`)
	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Grid.Width != 40 {
		t.Errorf("Width = %d, want 40", cfg.Grid.Width)
	}
	if cfg.Grid.Height != DefaultHeight {
		t.Errorf("Height = %d, want default %d", cfg.Grid.Height, DefaultHeight)
	}
	if cfg.Keyboard.Layout != "qwerty" || cfg.Display.Bell || cfg.Display.OriginX != 3 {
		t.Errorf("file settings not applied: %+v", cfg)
	}
	if cfg.Display.Ink != "#000000" {
		t.Errorf("Ink = %q", cfg.Display.Ink)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "tw.yml", `
grid:
  height: 8
buffer:
  capacity: 100
logging:
  level: debug
  file: /tmp/tw.log
`)
	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Grid.Height != 8 || cfg.Buffer.Capacity != 100 {
		t.Errorf("grid/buffer not applied: %+v", cfg)
	}
	if cfg.Grid.Width != DefaultWidth {
		t.Errorf("Width = %d, want default", cfg.Grid.Width)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/tw.log" {
		t.Errorf("logging not applied: %+v", cfg.Logging)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	for _, name := range []string{"empty.toml", "empty.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			if err := LoadFile(cfg, writeFile(t, name, "")); err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if *cfg != *Default() {
				t.Errorf("empty file changed config: %+v", cfg)
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		parse   bool
	}{
		{"toml syntax", "bad.toml", "[grid\nwidth = 3", true},
		{"toml unknown key", "bad.toml", "[grid]\ncolumns = 3", true},
		{"toml wrong type", "bad.toml", "[grid]\nwidth = \"wide\"", true},
		{"yaml syntax", "bad.yaml", "grid: [", true},
		{"yaml unknown key", "bad.yaml", "grid:\n  columns: 3", true},
		{"unsupported", "bad.ini", "width=3", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadFile(Default(), writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("LoadFile() returned nil")
			}
			var perr *ParseError
			if got := errors.As(err, &perr); got != tt.parse {
				t.Errorf("errors.As(ParseError) = %v, want %v (err %v)", got, tt.parse, err)
			}
		})
	}
}

func TestLoadFileTOMLPosition(t *testing.T) {
	err := LoadFile(Default(), writeFile(t, "pos.toml", "[grid]\nwidth = = 3\n"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(Default(), filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "tw.toml", "[grid]\nwidth = 30\nheight = 5\n")
	t.Setenv("TYPEWRITER_HEIGHT", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Width != 30 {
		t.Errorf("Width = %d, want 30 from file", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 7 {
		t.Errorf("Height = %d, want 7 from environment", cfg.Grid.Height)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Grid.Width != DefaultWidth {
		t.Errorf("Width = %d, want default", cfg.Grid.Width)
	}
}
