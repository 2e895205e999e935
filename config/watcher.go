package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often the watcher checks the file when
// filesystem notifications are unavailable.
const DefaultPollInterval = time.Second

// Watcher reloads a configuration file when it changes.
type Watcher struct {
	path     string
	interval time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path:     path,
		interval: DefaultPollInterval,
		logger:   slog.Default(),
	}
}

// WithPollInterval sets the polling interval used as a fallback.
func (w *Watcher) WithPollInterval(d time.Duration) *Watcher {
	if d > 0 {
		w.interval = d
	}
	return w
}

// WithLogger sets the logger used to report failed reloads.
func (w *Watcher) WithLogger(logger *slog.Logger) *Watcher {
	w.logger = logger
	return w
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Watch sends the current configuration and then every changed, valid
// configuration until ctx is cancelled, when the channel is closed.
// Invalid files are logged and skipped. A slow reader only ever sees the
// newest configuration. Uses fsnotify with a polling fallback.
func (w *Watcher) Watch(ctx context.Context) <-chan *Config {
	ch := make(chan *Config, 1)

	go func() {
		defer close(ch)

		var last *Config
		watcher, err := w.notifier()
		if err != nil {
			w.logger.Warn("file notifications unavailable, polling config",
				slog.String("path", w.path),
				slog.String("error", err.Error()))
			w.poll(ctx, ch, &last)
			return
		}
		defer watcher.Close()

		w.reload(ch, &last)
		w.watchEvents(ctx, ch, watcher, &last)
	}()

	return ch
}

// notifier watches the config file's directory, since editors often
// replace the file on save.
func (w *Watcher) notifier() (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// watchEvents reloads on writes to, or recreation of, the watched file.
func (w *Watcher) watchEvents(ctx context.Context, ch chan *Config, watcher *fsnotify.Watcher, last **Config) {
	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload(ch, last)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", slog.String("error", err.Error()))
		}
	}
}

// poll publishes the current configuration, then reloads whenever the
// file's size or modification time changes.
func (w *Watcher) poll(ctx context.Context, ch chan *Config, last **Config) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var modTime time.Time
	var size int64
	if info, err := os.Stat(w.path); err == nil {
		modTime, size = info.ModTime(), info.Size()
	}
	w.reload(ch, last)

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(modTime) && info.Size() == size {
				continue
			}
			modTime, size = info.ModTime(), info.Size()
			w.reload(ch, last)
		}
	}
}

// reload resolves the file and publishes it if it differs from the last
// published configuration.
func (w *Watcher) reload(ch chan *Config, last **Config) {
	cfg, err := Resolve(w.path)
	if err != nil {
		w.logger.Warn("config reload failed",
			slog.String("path", w.path),
			slog.String("error", err.Error()))
		return
	}
	if *last != nil && **last == *cfg {
		return
	}
	*last = cfg

	// Replace any unread value so the reader gets the newest one
	select {
	case <-ch:
	default:
	}
	ch <- cfg
	w.logger.Debug("config loaded", slog.String("path", w.path))
}
