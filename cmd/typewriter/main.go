// Package main is the entry point for the typewriter.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/typewriter/internal/app"
	"github.com/dshills/typewriter/internal/config"
	"github.com/dshills/typewriter/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the command line. Zero values mean "not given", so the
// configuration file and environment keep their say.
type options struct {
	configPath string
	width      int
	height     int
	capacity   int
	layout     string
	logLevel   string
	logFile    string
	noBell     bool
	snapshot   string
	replay     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closer, err := app.OpenLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	application, err := app.New(cfg, app.Options{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if opts.replay != "" {
		return replay(application, cfg, opts)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.configPath != "" {
		w, err := config.NewWatcher(opts.configPath, func() (*config.Config, error) {
			return loadConfig(opts)
		})
		if err != nil {
			logger.Warn("config changes will not be picked up: %v", err)
		} else {
			defer w.Close()
			go application.WatchConfig(ctx, w)
		}
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	runErr := application.Run()
	if opts.snapshot != "" {
		if err := writeSnapshot(application, opts.snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if runErr != nil && !errors.Is(runErr, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

// replay types the contents of a file on an in-memory display, then prints
// the page or writes it as a snapshot.
func replay(application *app.Application, cfg *config.Config, opts options) int {
	text, err := os.ReadFile(opts.replay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading replay input: %v\n", err)
		return 1
	}

	origin := cfg.Origin()
	size := cfg.Size()
	display := backend.NewNullBackend(size.Width+2*origin.Col, size.Height+2*origin.Row)
	if err := display.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := application.SetBackend(display); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}
	if err := application.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := application.Replay(string(text)); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.snapshot != "" {
		if err := writeSnapshot(application, opts.snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	printPage(os.Stdout, display)
	return 0
}

func printPage(w io.Writer, display *backend.NullBackend) {
	width, height := display.Size()
	for y := range height {
		fmt.Fprintln(w, display.Line(0, y, width))
	}
}

func writeSnapshot(application *app.Application, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := application.WriteSnapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// loadConfig layers defaults, the config file, the environment and the
// command line, in that order.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

func (o options) apply(cfg *config.Config) {
	if o.width > 0 {
		cfg.Grid.Width = o.width
	}
	if o.height > 0 {
		cfg.Grid.Height = o.height
	}
	if o.capacity > 0 {
		cfg.Buffer.Capacity = o.capacity
	}
	if o.layout != "" {
		cfg.Keyboard.Layout = o.layout
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Logging.File = o.logFile
	}
	if o.noBell {
		cfg.Display.Bell = false
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml or .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.width, "width", 0, "Grid width in characters")
	flag.IntVar(&opts.height, "height", 0, "Grid height in rows")
	flag.IntVar(&opts.capacity, "capacity", 0, "Text buffer capacity in characters")
	flag.StringVar(&opts.layout, "layout", "", "Keyboard layout (qwerty, qwertz)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write the log to this file")
	flag.BoolVar(&opts.noBell, "no-bell", false, "Do not ring the bell on rejected input")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write the final page as PNG to this file")
	flag.StringVar(&opts.replay, "replay", "", "Type the contents of this file headlessly instead of reading the keyboard")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Typewriter - a fixed grid typing page\n\n")
		fmt.Fprintf(os.Stderr, "Usage: typewriter [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range config.EnvNames() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  typewriter                          Type on a 64x16 page\n")
		fmt.Fprintf(os.Stderr, "  typewriter -layout qwerty           Keep Y and Z where they are printed\n")
		fmt.Fprintf(os.Stderr, "  typewriter -replay in.txt -snapshot page.png\n")
		fmt.Fprintf(os.Stderr, "\nPress Esc or Ctrl+C to quit.\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Typewriter %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", flag.Args())
		os.Exit(1)
	}

	return opts
}
