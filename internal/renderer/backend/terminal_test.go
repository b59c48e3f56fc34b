package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/typewriter/internal/input/key"
	"github.com/dshills/typewriter/internal/renderer/core"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name   string
		tk     tcell.Key
		r      rune
		mod    tcell.ModMask
		want   key.Key
		mods   key.Modifier
		wantOK bool
	}{
		{"lower letter", tcell.KeyRune, 'y', tcell.ModNone, key.KeyY, key.ModNone, true},
		{"upper letter", tcell.KeyRune, 'Z', tcell.ModShift, key.KeyZ, key.ModShift, true},
		{"shifted digit", tcell.KeyRune, '!', tcell.ModNone, key.Key1, key.ModShift, true},
		{"alt letter", tcell.KeyRune, 'a', tcell.ModAlt, key.KeyA, key.ModAlt, true},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, key.KeySpace, key.ModNone, true},
		{"non ascii", tcell.KeyRune, 'é', tcell.ModNone, key.KeyNone, key.ModNone, false},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, key.KeyEnter, key.ModNone, true},
		{"backspace", tcell.KeyBackspace, 0, tcell.ModNone, key.KeyBackspace, key.ModNone, true},
		{"backspace2", tcell.KeyBackspace2, 0, tcell.ModNone, key.KeyBackspace, key.ModNone, true},
		{"left", tcell.KeyLeft, 0, tcell.ModNone, key.KeyLeft, key.ModNone, true},
		{"shift right", tcell.KeyRight, 0, tcell.ModShift, key.KeyRight, key.ModShift, true},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, key.KeyEscape, key.ModNone, true},
		{"ctrl c", tcell.KeyCtrlC, 0, tcell.ModCtrl, key.KeyC, key.ModCtrl, true},
		{"function key", tcell.KeyF5, 0, tcell.ModNone, key.KeyNone, key.ModNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.tk, tt.r, tt.mod)
			if ok != tt.wantOK {
				t.Fatalf("convertKey() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Key != tt.want || got.Modifiers != tt.mods {
				t.Errorf("convertKey() = %s, want %s", got, key.Event{Key: tt.want, Modifiers: tt.mods})
			}
		})
	}
}

func TestConvertEvent(t *testing.T) {
	ev := convertEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if ev.Type != EventKey || ev.Key.Key != key.KeyQ {
		t.Errorf("key event converted to %+v", ev)
	}

	ev = convertEvent(tcell.NewEventResize(120, 40))
	if ev.Type != EventResize || ev.Width != 120 || ev.Height != 40 {
		t.Errorf("resize event converted to %+v", ev)
	}

	posted := Event{Type: EventKey, Key: key.NewEvent(key.KeyEnter, key.ModNone)}
	ev = convertEvent(tcell.NewEventInterrupt(posted))
	if ev.Type != EventKey || ev.Key.Key != key.KeyEnter {
		t.Errorf("interrupt event converted to %+v", ev)
	}

	ev = convertEvent(tcell.NewEventInterrupt("other"))
	if ev.Type != EventInterrupt {
		t.Errorf("foreign interrupt converted to %+v", ev)
	}
}

func TestConvertStyleRoundTrip(t *testing.T) {
	style := core.DefaultStyle().
		WithForeground(core.ColorFromRGB(10, 20, 30)).
		WithAttributes(core.AttrBold | core.AttrReverse)

	got := convertTcellStyle(convertStyle(style))
	if got.Foreground != style.Foreground {
		t.Errorf("foreground = %s, want %s", got.Foreground, style.Foreground)
	}
	if !got.Background.IsDefault() {
		t.Errorf("background = %s, want default", got.Background)
	}
	if got.Attributes != style.Attributes {
		t.Errorf("attributes = %v, want %v", got.Attributes, style.Attributes)
	}
}

func TestTerminalSimulation(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer term.Shutdown()
	sim.SetSize(20, 6)

	if w, h := term.Size(); w != 20 || h != 6 {
		t.Fatalf("Size() = (%d, %d), want (20, 6)", w, h)
	}

	term.SetCell(3, 2, core.NewStyledCell('K', core.DefaultStyle().WithAttributes(core.AttrBold)))
	got := term.GetCell(3, 2)
	if got.Rune != 'K' || !got.Style.Attributes.Has(core.AttrBold) {
		t.Errorf("GetCell() = %+v, want bold 'K'", got)
	}

	term.Fill(core.NewScreenRect(0, 0, 1, 4), core.NewCell('-'))
	if got := term.GetCell(3, 0).Rune; got != '-' {
		t.Errorf("filled cell = %q, want '-'", got)
	}
}
