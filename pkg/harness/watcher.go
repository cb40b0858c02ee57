package harness

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ScriptWatcher watches test script files for changes and triggers
// re-lints. Rapid event bursts are debounced into a single trigger.
type ScriptWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *WatcherConfig
	debounce *Debouncer

	mu      sync.Mutex
	running bool
}

// WatcherConfig contains configuration for the script watcher.
type WatcherConfig struct {
	// Path is the file or directory to watch.
	Path string

	// DebounceInterval is the quiet period required before a change
	// triggers a re-lint (default: 100ms).
	DebounceInterval time.Duration

	// Extensions is the list of script file extensions to watch.
	Extensions []string

	// SkipHidden controls whether hidden files are ignored.
	SkipHidden bool
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		DebounceInterval: 100 * time.Millisecond,
		Extensions:       []string{".mvir", ".move", ".test"},
		SkipHidden:       true,
	}
}

// NewScriptWatcher creates a script watcher.
func NewScriptWatcher(config *WatcherConfig, logger *slog.Logger) (*ScriptWatcher, error) {
	if config == nil {
		config = DefaultWatcherConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &ScriptWatcher{
		watcher:  watcher,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
	}, nil
}

// Watch blocks, re-invoking onChange with the changed path after each
// debounced change, until the context is cancelled.
func (sw *ScriptWatcher) Watch(ctx context.Context, onChange func(path string) error) error {
	sw.mu.Lock()
	if sw.running {
		sw.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	sw.running = true
	sw.mu.Unlock()

	defer func() {
		sw.mu.Lock()
		sw.running = false
		sw.mu.Unlock()
		sw.debounce.Stop()
		sw.watcher.Close()
	}()

	if err := sw.addPath(sw.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	sw.logger.Info("script watcher started",
		"path", sw.config.Path,
		"debounce_ms", sw.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			sw.logger.Info("script watcher stopped")
			return nil

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !sw.shouldProcessEvent(event) {
				continue
			}

			sw.logger.Debug("script change detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			changed := event.Name
			sw.debounce.Trigger(func() {
				if err := onChange(changed); err != nil {
					sw.logger.Error("re-lint failed",
						"path", changed,
						"error", err,
					)
				}
			})

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			sw.logger.Error("script watcher error", "error", err)
		}
	}
}

// addPath adds a file or directory (with subdirectories) to the watcher.
func (sw *ScriptWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return sw.watcher.Add(path)
	}

	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if sw.config.SkipHidden && strings.HasPrefix(filepath.Base(p), ".") && p != path {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if err := sw.watcher.Add(p); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", p, err)
			}
			sw.logger.Debug("watching directory", "path", p)
		}
		return nil
	})
}

// shouldProcessEvent filters events down to meaningful script changes.
func (sw *ScriptWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	if !sw.hasValidExtension(strings.ToLower(filepath.Ext(event.Name))) {
		return false
	}
	if sw.config.SkipHidden && strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return true
}

func (sw *ScriptWatcher) hasValidExtension(ext string) bool {
	for _, validExt := range sw.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

// Debouncer coalesces rapid event bursts: the callback runs only after
// a full quiet interval with no new triggers.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopCh   chan struct{}
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Trigger records an event. The callback fires after the debounce
// interval unless another trigger resets the timer first.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
		}

		d.mu.Lock()
		cb := d.callback
		d.mu.Unlock()

		if cb != nil {
			cb()
		}
	})
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	close(d.stopCh)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
