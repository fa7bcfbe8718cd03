// Package watch triggers regeneration rounds when Go sources change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler runs one round. Errors are logged and watching continues.
type Handler func(ctx context.Context) error

// Options configures a Watcher.
type Options struct {
	// Debounce is how long to wait for further changes before a round.
	Debounce time.Duration
	// Ignore reports whether a changed file must not trigger a round, e.g.
	// generated files written by the round itself.
	Ignore func(path string) bool
	// Logger; nil means slog.Default().
	Logger *slog.Logger
}

// Watcher runs a Handler after bursts of .go file changes below a root.
// Rounds never overlap.
type Watcher struct {
	root    string
	handler Handler
	opts    Options
	fsw     *fsnotify.Watcher
}

// New creates a watcher for every directory below root.
func New(root string, handler Handler, opts Options) (*Watcher, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{root: root, handler: handler, opts: opts, fsw: fsw}

	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run blocks until ctx is done, running the handler after each debounced
// burst of changes. It closes the underlying watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			if !w.relevant(ev) {
				continue
			}

			w.opts.Logger.Debug("change detected", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}

			trigger = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			w.opts.Logger.Warn("watch error", slog.Any("error", err))

		case <-trigger:
			trigger = nil

			if err := w.handler(ctx); err != nil {
				w.opts.Logger.Error("round failed", slog.Any("error", err))
			}
		}
	}
}

// relevant reports whether ev should trigger a round. New directories are
// added to the watch set.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				w.opts.Logger.Warn("watch directory", slog.String("path", ev.Name), slog.Any("error", err))
			}

			return false
		}
	}

	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}

	if filepath.Ext(ev.Name) != ".go" {
		return false
	}

	return w.opts.Ignore == nil || !w.opts.Ignore(ev.Name)
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}

		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}

		return nil
	})
}

// skipDir matches directories the go command ignores as well.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata" || name == "vendor"
}
