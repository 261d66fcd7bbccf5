// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher_test

import (
	"context"
	"sync"

	. "github.com/black-desk/fswatch/pkg/notifywatcher"
)

// fakeSubscriber forwards whatever the test pushes.
// Closing feed ends the subscription.
type fakeSubscriber struct {
	feed chan Record
	err  error

	mu        sync.Mutex
	calls     int
	roots     []Root
	cancelled bool
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{feed: make(chan Record, 16)}
}

func (s *fakeSubscriber) Subscribe(
	ctx context.Context, roots []Root, out chan<- Record,
) error {
	s.mu.Lock()
	s.calls++
	s.roots = roots
	s.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.cancelled = true
			s.mu.Unlock()
			return nil
		case record, ok := <-s.feed:
			if !ok {
				return s.err
			}
			select {
			case out <- record:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (s *fakeSubscriber) push(records ...Record) {
	for i := range records {
		s.feed <- records[i]
	}
}

func (s *fakeSubscriber) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *fakeSubscriber) subscribedRoots() []Root {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roots
}

func (s *fakeSubscriber) wasCancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}
