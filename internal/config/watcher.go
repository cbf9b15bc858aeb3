package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc is called after every reload attempt. On error the previous
// config stays current.
type ReloadFunc func(cfg CrossingConfig, err error)

// Watcher keeps a config file loaded and reloads it when it changes.
// Reloads never touch running games; they only change what Current returns.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	path        string
	preset      DifficultyPreset
	current     CrossingConfig
	onReload    ReloadFunc
	debounceDur time.Duration
	pending     time.Time // Last unprocessed change, zero when none
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a watcher for path. initial must already have the
// preset applied; reloaded files get the same preset.
func NewWatcher(path string, initial CrossingConfig, preset DifficultyPreset, onReload ReloadFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}

	if onReload == nil {
		onReload = func(CrossingConfig, error) {}
	}

	return &Watcher{
		watcher:     fsw,
		path:        filepath.Clean(path),
		preset:      preset,
		current:     initial,
		onReload:    onReload,
		debounceDur: 200 * time.Millisecond, // Editors often write a file several times
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching in the background.
// The directory is watched rather than the file so atomic saves are seen.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("config: watch %s: %w", w.path, err)
	}

	go w.run(ctx)
	return nil
}

// Stop ends watching and releases the underlying watcher.
// Safe to call when the watcher was never started.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	return w.watcher.Close()
}

// Current returns the most recent valid config.
func (w *Watcher) Current() CrossingConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(50 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onReload(w.Current(), fmt.Errorf("config: watch %s: %w", w.path, err))

		case <-debounceTicker.C:
			w.processPending()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return // Removal keeps the last good config
	}

	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processPending() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	cfg, err := w.reload()
	if err != nil {
		w.onReload(w.Current(), err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()
	w.onReload(cfg, nil)
}

func (w *Watcher) reload() (CrossingConfig, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return CrossingConfig{}, fmt.Errorf("config: failed to read %s: %w", w.path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return CrossingConfig{}, fmt.Errorf("config: failed to parse %s: %w", w.path, err)
	}
	ApplyPreset(&cfg, w.preset)
	return cfg, nil
}
