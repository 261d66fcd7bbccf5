// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/black-desk/fswatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/sourcegraph/conc/pool"
)

// Add registers a file or a directory.
// A path that does not exist is expanded as a pattern.
func (w *Watcher) Add(pattern string) (err error) {
	defer Wrap(&err, "add %q to notify watcher", pattern)

	if !utf8.ValidString(pattern) {
		err = types.ErrInvalidPath
		return
	}

	if _, statErr := os.Stat(pattern); statErr == nil {
		err = w.addPath(pattern)
		return
	}

	var paths []string
	paths, err = doublestar.FilepathGlob(pattern)
	if err != nil {
		err = fmt.Errorf("%w: %w", types.ErrInvalidPath, err)
		return
	}

	if len(paths) == 0 {
		err = fmt.Errorf("%w: no such file or directory", types.ErrInvalidPath)
		return
	}

	excluded := 0
	for i := range paths {
		addErr := w.addPath(paths[i])
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

// Init starts the subscription on every root collected by Add.
func (w *Watcher) Init() (err error) {
	defer Wrap(&err, "initialize notify watcher")

	if w.pool != nil {
		w.log.Warnw("Notify watcher has already been initialized.")
		return
	}

	var ctx context.Context
	ctx, w.cancel = context.WithCancel(context.Background())

	records := make(chan Record)
	queue := make(chan Record)
	w.queue = queue

	roots := slices.Clone(w.roots)

	w.pool = pool.New().WithContext(ctx).WithCancelOnError()
	w.pool.Go(func(ctx context.Context) error {
		defer close(records)
		return w.subscriber.Subscribe(ctx, roots, records)
	})
	w.pool.Go(func(ctx context.Context) error {
		defer close(queue)
		forward(ctx, records, queue)
		return nil
	})

	w.log.Debugw("Notify watcher initialized.",
		"roots", roots,
		"watched", w.files.Len(),
	)

	return
}

func (w *Watcher) Watched() []string {
	return w.files.Paths()
}

// Next returns the next event, waiting for the subscription when needed.
// Once the subscription has ended types.ErrStreamClosed is returned.
func (w *Watcher) Next(ctx context.Context) (ret types.Event, err error) {
	if w.queue == nil {
		err = ErrNotInitialized
		return
	}

	for len(w.pending) == 0 {
		var (
			record Record
			ok     bool
		)

		select {
		case record, ok = <-w.queue:
		default:
			select {
			case record, ok = <-w.queue:
			case <-ctx.Done():
				err = fmt.Errorf("%w: %w", types.ErrBlocking, ctx.Err())
				return
			}
		}

		if !ok {
			err = types.ErrStreamClosed
			return
		}

		w.pending = w.reconcile(record, w.pending)
	}

	ret = w.pending[0]
	w.pending = w.pending[1:]
	return
}

// Close stops the subscription and waits for it to finish.
// Only the first call reports how the subscription ended.
func (w *Watcher) Close() (err error) {
	w.closeOnce.Do(func() {
		if w.pool == nil {
			return
		}

		w.cancel()

		err = w.pool.Wait()
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		if err != nil {
			err = fmt.Errorf("close notify watcher: %w", err)
		}

		w.log.Debugw("Notify watcher closed.")
	})

	return
}
