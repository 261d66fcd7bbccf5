// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fswatch_test

import (
	"context"
	"sync"

	"github.com/black-desk/fswatch/pkg/types"
)

// fakeWatcher blocks in Next like the inotify backend does:
// it ignores ctx and only wakes up on new events or Close.
type fakeWatcher struct {
	mu      sync.Mutex
	added   []string
	reject  map[string]error
	watched []string
	inits   int
	closed  bool

	events chan types.Event
	done   chan struct{}
	once   sync.Once
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		reject: map[string]error{},
		events: make(chan types.Event, 16),
		done:   make(chan struct{}),
	}
}

func (w *fakeWatcher) Add(pattern string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.added = append(w.added, pattern)
	if err := w.reject[pattern]; err != nil {
		return err
	}
	w.watched = append(w.watched, pattern)
	return nil
}

func (w *fakeWatcher) Init() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.inits++
	return nil
}

func (w *fakeWatcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]string(nil), w.watched...)
}

func (w *fakeWatcher) Next(_ context.Context) (types.Event, error) {
	select {
	case event := <-w.events:
		return event, nil
	case <-w.done:
		return types.Event{}, types.ErrClosed
	}
}

func (w *fakeWatcher) Close() error {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.done)
	})
	return nil
}

func (w *fakeWatcher) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
