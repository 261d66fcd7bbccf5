// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fswatch

import (
	"context"
	"errors"
	"slices"

	"github.com/black-desk/fswatch/pkg/types"
)

func (f *FSWatch) addPaths() {
	for _, path := range f.cfg.Paths {
		err := f.watcher.Add(path)
		if errors.Is(err, types.ErrExcluded) {
			f.log.Warnw("Configured path is excluded by rules.",
				"path", path,
			)
			continue
		}
		if err != nil {
			f.log.Errorw("Failed to add configured path.",
				"path", path,
				"error", err,
			)
			continue
		}
	}
}

// runCloser closes the watcher once ctx is done,
// so that a pull blocked on the native layer returns.
func (f *FSWatch) runCloser(ctx context.Context) (err error) {
	<-ctx.Done()

	f.closeWatcher()

	return context.Cause(ctx)
}

func (f *FSWatch) closeWatcher() {
	err := f.watcher.Close()
	if err != nil {
		f.log.Errorw("Failed to close watcher.",
			"error", err,
		)
	}
}

func (f *FSWatch) runPump(ctx context.Context) (err error) {
	defer f.log.Debugw("Event pump exited.")

	f.log.Debugw("Start event pump.")

	watched := f.watcher.Watched()
	slices.Sort(watched)

	for i := range watched {
		err = f.send(ctx, types.Init(watched[i]))
		if err != nil {
			return
		}
	}

	for {
		var event types.Event
		event, err = f.watcher.Next(ctx)
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		if err != nil {
			f.log.Infow("Event stream ended.",
				"error", err,
			)
			return
		}

		err = f.send(ctx, event)
		if err != nil {
			return
		}
	}
}

func (f *FSWatch) send(ctx context.Context, event types.Event) error {
	select {
	case f.events <- event:
		f.log.Debugw("Event published.",
			"event", event,
		)
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}
