package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/fplint/pkg/parser"
)

// watchDebounce is how long to wait for more events before re-linting.
const watchDebounce = 100 * time.Millisecond

// debouncer batches paths and hands them to flush once no new path has
// arrived for delay.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]bool
	timer   *time.Timer
	flush   func(paths []string)
}

func newDebouncer(delay time.Duration, flush func(paths []string)) *debouncer {
	return &debouncer{delay: delay, pending: make(map[string]bool), flush: flush}
}

// Add records path and restarts the quiet period.
func (d *debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Stop cancels a pending flush.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

func (d *debouncer) fire() {
	d.mu.Lock()
	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	d.pending = make(map[string]bool)
	d.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	d.flush(paths)
}

// watchAndLint watches the directories under roots and calls relint with
// changed source files that pass the file set's exclude patterns. It blocks
// until ctx is done.
func watchAndLint(ctx context.Context, roots []string, files FileSet, relint func(changed []string), logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if len(roots) == 0 {
		roots = []string{"."}
	}
	for _, root := range roots {
		if err := watchTree(watcher, root); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}

	d := newDebouncer(watchDebounce, relint)
	defer d.Stop()

	logger.Info("watching for changes", "paths", roots)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchTree(watcher, event.Name)
					continue
				}
			}
			if !parser.IsSourceFile(event.Name) || files.excluded(filepath.ToSlash(filepath.Clean(event.Name))) {
				continue
			}
			d.Add(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// watchTree adds root and its subdirectories, skipping node_modules and
// hidden directories. A file root watches its directory.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (name == "node_modules" || (len(name) > 1 && name[0] == '.')) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
