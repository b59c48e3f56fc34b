package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/typewriter/internal/renderer/core"
)

// Default values.
const (
	DefaultWidth    = 64
	DefaultHeight   = 16
	DefaultCapacity = 4096
	DefaultLayout   = "qwertz"
	DefaultLogLevel = "info"
)

// Accepted values for enumerated settings.
var (
	Layouts   = []string{"qwerty", "qwertz"}
	LogLevels = []string{"debug", "info", "warn", "error"}
)

// Config is the complete typewriter configuration.
type Config struct {
	Grid     GridConfig     `toml:"grid" yaml:"grid"`
	Buffer   BufferConfig   `toml:"buffer" yaml:"buffer"`
	Keyboard KeyboardConfig `toml:"keyboard" yaml:"keyboard"`
	Display  DisplayConfig  `toml:"display" yaml:"display"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
}

// GridConfig sets the character grid dimensions.
type GridConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// BufferConfig sets the text buffer capacity in characters.
type BufferConfig struct {
	Capacity int `toml:"capacity" yaml:"capacity"`
}

// KeyboardConfig selects the emulated keyboard layout.
type KeyboardConfig struct {
	Layout string `toml:"layout" yaml:"layout"`
}

// DisplayConfig controls how the grid is presented.
type DisplayConfig struct {
	// Bell rings the terminal bell on rejected input.
	Bell bool `toml:"bell" yaml:"bell"`

	// Ink and Paper are hex colours; empty means the terminal default.
	Ink   string `toml:"ink" yaml:"ink"`
	Paper string `toml:"paper" yaml:"paper"`

	// OriginX and OriginY offset the grid inside the terminal.
	OriginX int `toml:"origin_x" yaml:"origin_x"`
	OriginY int `toml:"origin_y" yaml:"origin_y"`

	// Frame draws a border around the grid.
	Frame bool `toml:"frame" yaml:"frame"`
}

// LoggingConfig controls the diagnostic log.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`

	// File receives log output; empty discards it so the terminal stays clean.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid:     GridConfig{Width: DefaultWidth, Height: DefaultHeight},
		Buffer:   BufferConfig{Capacity: DefaultCapacity},
		Keyboard: KeyboardConfig{Layout: DefaultLayout},
		Display:  DisplayConfig{Bell: true, OriginX: 1, OriginY: 1, Frame: true},
		Logging:  LoggingConfig{Level: DefaultLogLevel},
	}
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Size returns the grid dimensions.
func (c *Config) Size() core.Size {
	return core.Size{Width: c.Grid.Width, Height: c.Grid.Height}
}

// Origin returns the terminal cell of grid cell (0,0).
func (c *Config) Origin() core.Point {
	return core.Pt(c.Display.OriginX, c.Display.OriginY)
}

// Style returns the grid cell style built from the ink and paper colours.
// Colours are assumed valid; see Validate.
func (c *Config) Style() core.Style {
	style := core.DefaultStyle()
	if ink, err := core.ColorFromHex(c.Display.Ink); err == nil {
		style = style.WithForeground(ink)
	}
	if paper, err := core.ColorFromHex(c.Display.Paper); err == nil {
		style = style.WithBackground(paper)
	}
	return style
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(path string, value any, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Message: fmt.Sprintf(format, args...)})
	}

	if c.Grid.Width < 2 {
		add("grid.width", c.Grid.Width, "must be at least 2")
	}
	if c.Grid.Height < 2 {
		add("grid.height", c.Grid.Height, "must be at least 2")
	}
	if c.Buffer.Capacity < 1 {
		add("buffer.capacity", c.Buffer.Capacity, "must be positive")
	}
	if !slices.Contains(Layouts, c.Keyboard.Layout) {
		add("keyboard.layout", c.Keyboard.Layout, "must be one of %v", Layouts)
	}
	if _, err := core.ColorFromHex(c.Display.Ink); err != nil {
		add("display.ink", c.Display.Ink, "%v", err)
	}
	if _, err := core.ColorFromHex(c.Display.Paper); err != nil {
		add("display.paper", c.Display.Paper, "%v", err)
	}
	minOrigin := 0
	if c.Display.Frame {
		minOrigin = 1
	}
	if c.Display.OriginX < minOrigin {
		add("display.origin_x", c.Display.OriginX, "must be at least %d", minOrigin)
	}
	if c.Display.OriginY < minOrigin {
		add("display.origin_y", c.Display.OriginY, "must be at least %d", minOrigin)
	}
	if !slices.Contains(LogLevels, c.Logging.Level) {
		add("logging.level", c.Logging.Level, "must be one of %v", LogLevels)
	}

	return errors.Join(errs...)
}
