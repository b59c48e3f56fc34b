package app

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/dshills/typewriter/internal/editor"
	"github.com/dshills/typewriter/internal/input/key"
	"github.com/dshills/typewriter/internal/renderer/backend"
	"github.com/dshills/typewriter/internal/renderer/core"
)

// eventLoop polls the backend until quit or a fatal error.
func (app *Application) eventLoop(b backend.Backend) error {
	for {
		err := app.HandleEvent(b.PollEvent())
		if err == nil {
			continue
		}
		if errors.Is(err, ErrQuit) {
			snap := app.metrics.Snapshot()
			app.logger.Info("quit after %d events (%d rejected, %d relayouts, %d cache rebuilds)",
				snap.EventCount, snap.Rejected, snap.Relayouts, snap.CacheRebuilds)
			return nil
		}
		return err
	}
}

// HandleEvent processes one backend event completely. It returns ErrQuit
// when the user asked to stop and a *FatalError when an internal invariant
// broke while handling the event.
func (app *Application) HandleEvent(ev backend.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fe := NewFatalError(describeEvent(ev), r, string(debug.Stack()))
			app.logger.WithComponent("editor").Error("%v\n%s", fe, fe.Stack)
			err = fe
		}
	}()

	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev.Key)
	case backend.EventResize:
		app.logger.Debug("display resized to %dx%d", ev.Width, ev.Height)
		return app.redraw()
	case backend.EventInterrupt:
		if app.quit.Load() {
			return ErrQuit
		}
		return nil
	default:
		return nil
	}
}

// isQuitKey reports whether ev ends the session: Escape or Ctrl+C.
func isQuitKey(ev key.Event) bool {
	if ev.Key == key.KeyEscape && ev.Modifiers == key.ModNone {
		return true
	}
	return ev.Key == key.KeyC && ev.Modifiers.Has(key.ModCtrl)
}

func (app *Application) handleKey(ev key.Event) error {
	if isQuitKey(ev) {
		return ErrQuit
	}

	timer := StartTimer()
	sym := app.resolver.Resolve(ev)
	res := app.editor.Handle(sym)

	switch {
	case res.Rejected():
		app.metrics.RecordRejected()
		app.logger.Debug("rejected %s: %v", ev, res.Err)
		if app.bell.Load() {
			app.backend.Beep()
		}
	case res.Ignored:
		app.metrics.RecordIgnored()
		app.logger.Debug("ignored %s", ev)
	}
	if res.Relayout {
		app.metrics.RecordRelayout()
		app.logger.Debug("relayout at caret %s", app.editor.Caret())
	}

	app.present(res)

	state := app.editor.State()
	app.metrics.RecordCacheRebuilds(state.Rebuilds)
	if app.logger.Enabled(LogLevelDebug) {
		app.logger.Debug("after %s: %s", ev, state)
	}
	app.metrics.RecordEvent(timer.Elapsed())
	return nil
}

// redraw repaints the whole page, frame included.
func (app *Application) redraw() error {
	if err := app.presenter.Fits(); err != nil {
		app.logger.Warn("grid does not fit the display: %v", err)
	}
	app.presenter.Reset()
	app.present(app.editor.Redraw())
	return nil
}

// present applies the commands, places the cursor and flushes.
func (app *Application) present(res editor.Result) {
	regions := app.presenter.Apply(res.Commands)
	app.metrics.RecordDraw(len(res.Commands), len(regions))
	app.presenter.PlaceCursor(app.cursorCell())
	app.presenter.Show()
}

// cursorCell is where the display cursor belongs: the cell the next glyph
// lands in, or just right of the last row when the grid is full.
func (app *Application) cursorCell() core.Point {
	if slot, ok := app.editor.DrawingSlot(); ok {
		return slot
	}
	return app.editor.Caret()
}

func describeEvent(ev backend.Event) string {
	switch ev.Type {
	case backend.EventKey:
		return "key " + ev.Key.String()
	case backend.EventResize:
		return fmt.Sprintf("resize %dx%d", ev.Width, ev.Height)
	default:
		return fmt.Sprintf("event %d", ev.Type)
	}
}
