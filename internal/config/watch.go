package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads settings whenever a YAML file in the custom or user
// config directory changes. Readers always see a complete Settings value;
// a file that fails to load keeps the previous one.
type Watcher struct {
	opts    Options
	logger  *log.Logger
	fsw     *fsnotify.Watcher
	dirs    []string
	mu      sync.RWMutex
	current *Settings
	reloads int
}

// NewWatcher watches the config directories that exist. initial is served
// until the first successful reload.
func NewWatcher(opts Options, initial *Settings, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{opts: opts, logger: logger, fsw: fsw, current: initial}
	candidates := []string{filepath.Join(AppDir(), "configs")}
	if opts.Dir != "" {
		candidates = append([]string{ExpandHome(opts.Dir)}, candidates...)
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			logger.Warn("cannot watch config directory", "dir", dir, "error", err)
			continue
		}
		w.dirs = append(w.dirs, dir)
	}
	return w, nil
}

// Dirs returns the directories being watched.
func (w *Watcher) Dirs() []string {
	return w.dirs
}

// Settings returns the latest settings.
func (w *Watcher) Settings() *Settings {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Reloads returns how many times the settings were replaced.
func (w *Watcher) Reloads() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.reloads
}

// Run processes file events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".yaml") {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.reload(ev.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload(changed string) {
	s, _, err := Load(w.opts)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous settings", "file", changed, "error", err)
		return
	}
	w.mu.Lock()
	w.current = s
	w.reloads++
	w.mu.Unlock()
	w.logger.Info("config reloaded", "file", filepath.Base(changed))
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
