// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads the input file when it changes on disk, so an external
// edit re-evaluates the current pattern without restarting rexi.
//
// The parent directory is watched rather than the file itself: editors
// that write-and-rename would otherwise silently detach the watch.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	events   chan string
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewWatcher creates a watcher for the given file. Events are debounced:
// bursts of writes collapse into a single reload.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fsw,
		events:   make(chan string, 1),
		ctx:      ctx,
		cancel:   cancel,
	}
	go w.run()
	return w, nil
}

// Events delivers the new file content after each (debounced) change.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) run() {
	// run is the only sender, so closing here lets consumers distinguish
	// a stopped watcher from a quiet one.
	defer close(w.events)

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			text, err := Read(w.path)
			if err != nil {
				continue
			}
			select {
			case w.events <- text:
			case <-w.ctx.Done():
				return
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
