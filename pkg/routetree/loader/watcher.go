package loader

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"

	"github.com/BrandonKowalski/routetree/pkg/routetree/constants"
	"github.com/BrandonKowalski/routetree/pkg/routetree/internal"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

// ReloadFunc receives each definition tree rebuilt after the file changed.
type ReloadFunc func(def *route.DefNode)

// WatcherOptions configure a Watcher.
type WatcherOptions struct {
	Debounce time.Duration
	Registry Registry
	Logger   *slog.Logger
	OnError  func(error)
}

func DefaultWatcherOptions() WatcherOptions {
	return WatcherOptions{
		Debounce: constants.DefaultReloadDebounce,
	}
}

// Watcher rebuilds a declaration file whenever it changes on disk.
//
// The containing directory is watched rather than the file, so editors that
// save by renaming a temporary file over the original are picked up. Bursts
// of events inside the debounce window cause a single reload. A file that
// fails to load is reported and the previous definition stays in use.
type Watcher struct {
	path     string
	onReload ReloadFunc
	opts     WatcherOptions

	fs        *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
	closeOnce sync.Once
	closeErr  error
}

func NewWatcher(path string, onReload ReloadFunc, opts *WatcherOptions) (*Watcher, error) {
	if onReload == nil {
		return nil, errors.New("watcher needs a reload callback")
	}
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve path")
	}

	o := DefaultWatcherOptions()
	if opts != nil {
		o = *opts
		if err := mergo.Merge(&o, DefaultWatcherOptions()); err != nil {
			return nil, errors.Wrap(err, "merge watcher options")
		}
	}
	if o.Logger == nil {
		o.Logger = internal.GetInternalLogger()
	}

	return &Watcher{
		path:     filepath.Clean(abs),
		onReload: onReload,
		opts:     o,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the watch is registered; reloads
// run on a background goroutine until ctx is cancelled or Stop is called.
// Either one releases the underlying watch.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return errors.Wrapf(err, "watch %s", filepath.Dir(w.path))
	}
	w.fs = fsw

	w.wg.Add(1)
	go w.loop(ctx)

	w.opts.Logger.Debug("watching route declarations", "path", w.path, "debounce", w.opts.Debounce)
	return nil
}

// Stop ends the watch and waits for any reload in progress.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.close()
	})
	return err
}

func (w *Watcher) close() error {
	w.closeOnce.Do(func() {
		if w.fs != nil {
			w.closeErr = w.fs.Close()
		}
	})
	return w.closeErr
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	defer func() {
		if err := w.close(); err != nil {
			w.opts.Logger.Debug("closing route declaration watch", "path", w.path, "error", err)
		}
	}()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.fail(errors.Wrap(err, "watch"))
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	def, err := Load(w.path, w.opts.Registry)
	if err != nil {
		w.fail(err)
		return
	}
	w.opts.Logger.Info("route declarations reloaded", "path", w.path)
	w.onReload(def)
}

func (w *Watcher) fail(err error) {
	w.opts.Logger.Error("route declarations not reloaded", "path", w.path, "error", err)
	if w.opts.OnError != nil {
		w.opts.OnError(err)
	}
}
