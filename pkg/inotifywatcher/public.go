// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package inotifywatcher

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/black-desk/fswatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/bmatcuk/doublestar/v4"
)

// Add expands pattern and registers every admitted match.
// Failures of a single match are logged and skipped.
// types.ErrExcluded is returned only when pattern matched something
// and the rules rejected all of it.
func (w *Watcher) Add(pattern string) (err error) {
	defer Wrap(&err, "add %q to inotify watcher", pattern)

	if !utf8.ValidString(pattern) {
		err = types.ErrInvalidPath
		return
	}

	var paths []string
	paths, err = doublestar.FilepathGlob(pattern)
	if err != nil {
		err = fmt.Errorf("%w: %w", types.ErrInvalidPath, err)
		return
	}

	if len(paths) == 0 {
		w.log.Debugw("Pattern matches nothing.",
			"pattern", pattern,
		)
		return
	}

	excluded := 0
	for i := range paths {
		_, addErr := w.addPath(paths[i])
		if errors.Is(addErr, types.ErrExcluded) {
			excluded++
			continue
		}
		if addErr != nil {
			w.log.Errorw("Failed to add path to watcher.",
				"path", paths[i],
				"error", addErr,
			)
		}
	}

	if excluded == len(paths) {
		err = types.ErrExcluded
		return
	}

	return
}

// Init exists to satisfy interfaces.Watcher.
// Records are read synchronously by Pull, so there is nothing to start.
func (w *Watcher) Init() error {
	if w.initialized {
		w.log.Warnw("Inotify watcher has already been initialized.")
		return nil
	}

	w.initialized = true
	w.log.Debugw("Inotify watcher initialized.",
		"watched", w.table.Len(),
	)
	return nil
}

func (w *Watcher) Watched() []string {
	return w.table.Paths()
}

// Pull reads one batch of native records and reconciles it.
// It blocks until the native layer has something to report.
// A failed read is logged and yields no events.
func (w *Watcher) Pull() (events []types.Event) {
	events, err := w.pull()
	if err != nil {
		w.log.Errorw("Failed to read inotify events.",
			"error", err,
		)
	}

	return
}

// Next returns the next event, reading from the native layer when nothing is pending.
// Consecutive read failures are retried with a growing delay,
// the last one is returned once maxReadFailures is reached.
func (w *Watcher) Next(ctx context.Context) (event types.Event, err error) {
	failures := 0

	for len(w.pending) == 0 {
		if w.closed.Load() {
			err = types.ErrClosed
			return
		}

		if err = ctx.Err(); err != nil {
			return
		}

		var events []types.Event
		events, err = w.pull()
		if err == nil {
			failures = 0
			w.pending = append(w.pending, events...)
			continue
		}

		failures++
		w.log.Errorw("Failed to read inotify events.",
			"error", err,
			"failures", failures,
		)

		if failures >= maxReadFailures {
			err = fmt.Errorf("read inotify events: %w", err)
			return
		}

		w.backoff(ctx, time.Duration(failures)*readRetryInterval)
	}

	err = nil
	event = w.pending[0]
	w.pending = w.pending[1:]
	return
}

// Close may be called from another goroutine
// to wake up a blocked Pull or Next.
func (w *Watcher) Close() (err error) {
	defer Wrap(&err, "close inotify watcher")

	w.closeOnce.Do(func() {
		w.closed.Store(true)
		close(w.done)
		err = w.native.Close()
	})

	return
}
