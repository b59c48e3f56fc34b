package app

import (
	"context"

	"github.com/dshills/typewriter/internal/config"
)

// ApplyConfig applies the settings that may change while running: the log
// level and the bell. Other settings are fixed at creation. It returns the
// paths of the settings that changed.
func (app *Application) ApplyConfig(cfg *config.Config) []string {
	var changed []string

	if level := ParseLogLevel(cfg.Logging.Level); level != app.logger.Level() {
		app.logger.SetLevel(level)
		changed = append(changed, "logging.level")
	}
	if app.bell.Swap(cfg.Display.Bell) != cfg.Display.Bell {
		changed = append(changed, "display.bell")
	}

	if len(changed) > 0 {
		app.logger.WithComponent("config").Info("applied %v", changed)
	}
	return changed
}

// WatchConfig applies reloaded configurations until ctx is done or the
// watcher closes. Invalid reloads are logged and skipped.
func (app *Application) WatchConfig(ctx context.Context, w *config.Watcher) {
	log := app.logger.WithComponent("config").WithField("file", w.Path())
	for {
		select {
		case <-ctx.Done():
			return

		case ch, ok := <-w.Changes():
			if !ok {
				return
			}
			if ch.Err != nil {
				log.Warn("reload failed: %v", ch.Err)
				continue
			}
			if err := ch.Config.Validate(); err != nil {
				log.Warn("reloaded config is invalid: %v", err)
				continue
			}
			app.ApplyConfig(ch.Config)

		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			log.Warn("watch error: %v", err)
		}
	}
}
