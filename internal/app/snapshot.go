package app

import (
	"image/color"
	"io"
	"strings"

	"github.com/dshills/typewriter/internal/font"
	"github.com/dshills/typewriter/internal/input/key"
	"github.com/dshills/typewriter/internal/renderer/backend"
	"github.com/dshills/typewriter/internal/renderer/core"
)

var (
	defaultInk   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	defaultPaper = color.RGBA{R: 0xf4, G: 0xec, B: 0xd8, A: 0xff}
)

// WriteSnapshot writes the page currently on the grid as a PNG image.
func (app *Application) WriteSnapshot(w io.Writer) error {
	if app.presenter == nil {
		return ErrNoBackend
	}
	ink := toRGBA(app.cfg.Style().Foreground, defaultInk)
	paper := toRGBA(app.cfg.Style().Background, defaultPaper)
	return font.NewRasterizer(app.glyphs, ink, paper).WritePNG(w, app.presenter)
}

func toRGBA(c core.Color, fallback color.RGBA) color.RGBA {
	if c.IsDefault() {
		return fallback
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Replay feeds text through the same path as keyboard input. Line feeds
// press Enter and backspace or DEL press Backspace. Characters with no key
// on a US keyboard are skipped.
func (app *Application) Replay(text string) error {
	for _, r := range strings.ReplaceAll(text, "\r\n", "\n") {
		var ev key.Event
		switch r {
		case '\n', '\r':
			ev = key.NewEvent(key.KeyEnter, key.ModNone)
		case '\b', 0x7f:
			ev = key.NewEvent(key.KeyBackspace, key.ModNone)
		default:
			var ok bool
			if ev, ok = key.FromRune(r); !ok {
				continue
			}
		}
		if err := app.HandleEvent(backend.Event{Type: backend.EventKey, Key: ev}); err != nil {
			return err
		}
	}
	return nil
}
