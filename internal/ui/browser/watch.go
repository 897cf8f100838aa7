// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive chord browser for chordtab.
package browser

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/chordtab-tui/internal/chord"
)

// =============================================================================
// DICTIONARY FILE WATCHER
// =============================================================================

// Watcher reloads the dictionary when its file changes on disk, so edits
// made outside the browser (hand edits, another chordtab invocation) show up
// live. Events are debounced because editors produce bursts of writes, and
// the watch is on the parent directory because atomic saves replace the file
// by rename.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	messages chan tea.Msg
	done     chan struct{}
}

// NewWatcher creates a watcher for the dictionary file at path and starts
// delivering messages immediately.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		debounce: debounce,
		fsw:      fsw,
		messages: make(chan tea.Msg, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Messages returns the channel the watcher delivers dictReloadedMsg and
// watchErrMsg values on. It is closed by Close.
func (w *Watcher) Messages() <-chan tea.Msg {
	return w.messages
}

// Close stops watching and closes the message channel.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

// run coalesces change events with a debounce timer and emits one reload per
// burst.
func (w *Watcher) run() {
	defer close(w.messages)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.deliver(watchErrMsg{err: err})

		case <-fire:
			timer = nil
			fire = nil
			w.deliver(w.reload())
		}
	}
}

// reload reads the dictionary file; a missing file counts as empty, matching
// startup behavior.
func (w *Watcher) reload() tea.Msg {
	dict, err := chord.LoadDictionary(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return dictReloadedMsg{dict: chord.NewDictionary()}
		}
		return watchErrMsg{err: err}
	}
	return dictReloadedMsg{dict: dict}
}

// deliver sends without blocking forever if the browser is shutting down.
func (w *Watcher) deliver(msg tea.Msg) {
	select {
	case w.messages <- msg:
	case <-w.done:
	}
}
