package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MrSnakeDoc/showreel/internal/logger"
)

// DefaultWatchDebounce groups editor save bursts into one reload
const DefaultWatchDebounce = 500 * time.Millisecond

// FileWatcher triggers a reload when one of the watched content files changes
type FileWatcher struct {
	files    map[string]struct{} // cleaned absolute paths
	trigger  chan struct{}
	debounce time.Duration
	logger   logger.Logger

	watcher  *fsnotify.Watcher
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewFileWatcher creates a watcher for the given files.
// Events are sent on trigger without blocking; a pending trigger absorbs new ones.
func NewFileWatcher(files []string, trigger chan struct{}, debounce time.Duration, log logger.Logger) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			set[filepath.Clean(abs)] = struct{}{}
		}
	}

	return &FileWatcher{
		files:    set,
		trigger:  trigger,
		debounce: debounce,
		logger:   log,
		stopCh:   make(chan struct{}),
	}
}

// Start watches the parent directories of the files.
// Watching directories survives editors that replace files on save.
func (fw *FileWatcher) Start(ctx context.Context) error {
	if len(fw.files) == 0 {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dirs := make(map[string]struct{})
	for f := range fw.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		fw.logger.Info("watching content directory", logger.String("dir", dir))
	}
	fw.watcher = watcher

	go fw.loop(ctx)
	return nil
}

func (fw *FileWatcher) loop(ctx context.Context) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			fw.logger.Debug("content file changed",
				logger.String("file", event.Name),
				logger.String("op", event.Op.String()))

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(fw.debounce, fw.fire)
			mu.Unlock()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", logger.Error(err))

		case <-fw.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := fw.files[filepath.Clean(abs)]
	return ok
}

func (fw *FileWatcher) fire() {
	select {
	case fw.trigger <- struct{}{}:
		fw.logger.Info("content change detected, reload queued")
	default:
		// A reload is already pending
	}
}

// Stop stops watching. Safe to call more than once.
func (fw *FileWatcher) Stop() {
	fw.stopOnce.Do(func() {
		close(fw.stopCh)
		if fw.watcher != nil {
			_ = fw.watcher.Close()
		}
	})
}
