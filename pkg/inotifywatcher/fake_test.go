// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package inotifywatcher_test

import (
	"sync"

	. "github.com/black-desk/fswatch/pkg/inotifywatcher"
	"github.com/black-desk/fswatch/pkg/types"
	"github.com/black-desk/fswatch/pkg/watchstate"
)

type readResult struct {
	records []Record
	err     error
}

// fakeNative hands out increasing handles
// and replays batches and read errors in the order the test pushes them.
type fakeNative struct {
	mu      sync.Mutex
	next    watchstate.Handle
	handles map[string]watchstate.Handle
	masks   map[string]Mask
	removed []watchstate.Handle
	addErrs map[string]error

	results   chan readResult
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		handles: map[string]watchstate.Handle{},
		masks:   map[string]Mask{},
		addErrs: map[string]error{},
		results: make(chan readResult, 16),
		closed:  make(chan struct{}),
	}
}

func (n *fakeNative) AddWatch(path string, mask Mask) (watchstate.Handle, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.addErrs[path]; err != nil {
		return 0, err
	}

	n.next++
	n.handles[path] = n.next
	n.masks[path] = mask
	return n.next, nil
}

func (n *fakeNative) RemoveWatch(handle watchstate.Handle) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.removed = append(n.removed, handle)
	return nil
}

func (n *fakeNative) Read(buf []byte) ([]Record, error) {
	select {
	case result := <-n.results:
		return result.records, result.err
	case <-n.closed:
		return nil, types.ErrClosed
	}
}

func (n *fakeNative) Close() error {
	n.closeOnce.Do(func() { close(n.closed) })
	return nil
}

func (n *fakeNative) handleOf(path string) watchstate.Handle {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.handles[path]
}

func (n *fakeNative) maskOf(path string) Mask {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.masks[path]
}

func (n *fakeNative) removedHandles() []watchstate.Handle {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]watchstate.Handle(nil), n.removed...)
}

func (n *fakeNative) push(records ...Record) {
	n.results <- readResult{records: records}
}

func (n *fakeNative) fail(err error) {
	n.results <- readResult{err: err}
}

func (n *fakeNative) failAddWatch(path string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.addErrs[path] = err
}
