package app

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/typewriter/internal/config"
	"github.com/dshills/typewriter/internal/editor"
	"github.com/dshills/typewriter/internal/font"
	"github.com/dshills/typewriter/internal/input/key"
	"github.com/dshills/typewriter/internal/renderer/backend"
)

// Application is the typewriter: one editor driven by one backend.
type Application struct {
	mu sync.Mutex

	cfg     *config.Config
	session string
	logger  *Logger
	metrics *Metrics

	glyphs    *font.Table
	editor    *editor.Editor
	resolver  *key.Resolver
	backend   backend.Backend
	presenter *backend.Presenter

	bell    atomic.Bool
	running atomic.Bool
	quit    atomic.Bool
}

// Options configures the application.
type Options struct {
	// Logger receives diagnostics. Defaults to NullLogger.
	Logger *Logger

	// Metrics collects input statistics. Defaults to a fresh tracker.
	Metrics *Metrics
}

// New creates an application from a validated-on-entry configuration.
func New(cfg *config.Config, opts Options) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewComponentError("config", "validate", err)
	}

	layout, err := key.LayoutByName(cfg.Keyboard.Layout)
	if err != nil {
		return nil, NewComponentError("keyboard", "select layout", err)
	}

	glyphs := font.NewTable()
	ed, err := editor.New(cfg.Size(), cfg.Buffer.Capacity, glyphs)
	if err != nil {
		return nil, NewComponentError("editor", "create", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	session := uuid.NewString()
	app := &Application{
		cfg:      cfg.Clone(),
		session:  session,
		logger:   logger.WithField("session", session),
		metrics:  metrics,
		glyphs:   glyphs,
		editor:   ed,
		resolver: key.NewResolver(layout),
	}
	app.bell.Store(cfg.Display.Bell)

	app.logger.Info("created %s grid, capacity %d, layout %s",
		cfg.Size(), cfg.Buffer.Capacity, layout.Name())
	return app, nil
}

// SetBackend sets the display backend.
// Must be called before Run or Start.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	app.presenter = backend.NewPresenter(b, app.cfg.Size(), app.glyphs, backend.PresenterOptions{
		Origin: app.cfg.Origin(),
		Style:  app.cfg.Style(),
		Frame:  app.cfg.Display.Frame,
	})
	return nil
}

// Run initializes the backend and processes events until the user quits
// or an event fails fatally. A normal quit returns nil.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer b.Shutdown()

	if err := app.Start(); err != nil {
		return err
	}
	return app.eventLoop(b)
}

// Start draws the initial page. Run calls it; headless callers that feed
// events with HandleEvent call it directly after initializing the backend.
func (app *Application) Start() error {
	if app.presenter == nil {
		return ErrNoBackend
	}
	app.backend.SetCursorStyle(backend.CursorBlock)
	return app.redraw()
}

// Shutdown asks a running event loop to stop.
func (app *Application) Shutdown() {
	app.quit.Store(true)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b != nil {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Session returns the identifier attached to every log line.
func (app *Application) Session() string {
	return app.session
}

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Metrics returns the input statistics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Config returns the configuration the application was created with.
func (app *Application) Config() *config.Config {
	return app.cfg.Clone()
}

// IsFatal reports whether err ended the application abnormally.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
