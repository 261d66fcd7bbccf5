// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fswatch

import (
	"context"

	"github.com/black-desk/fswatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
)

// Events is closed when Run returns.
func (f *FSWatch) Events() <-chan types.Event {
	return f.events
}

// Run registers the configured paths, reports them as Init events,
// and then forwards every event until ctx is done or the stream ends.
func (f *FSWatch) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "running fswatch")
	defer close(f.events)

	f.addPaths()

	err = f.watcher.Init()
	if err != nil {
		f.closeWatcher()
		return
	}

	pool := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	pool.Go(f.runCloser)
	pool.Go(f.runPump)

	return pool.Wait()
}
