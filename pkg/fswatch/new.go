// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fswatch

import (
	"github.com/black-desk/fswatch/pkg/fswatch/config"
	"github.com/black-desk/fswatch/pkg/interfaces"
	"github.com/black-desk/fswatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// FSWatch registers the configured paths with a watcher
// and publishes everything it reports on a channel.
type FSWatch struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	watcher interfaces.Watcher

	events chan types.Event
}

type Opt = (func(*FSWatch) (*FSWatch, error))

func New(opts ...Opt) (ret *FSWatch, err error) {
	defer Wrap(&err, "create new fswatch")

	f := &FSWatch{
		events: make(chan types.Event),
	}
	for i := range opts {
		f, err = opts[i](f)
		if err != nil {
			f = nil
			return
		}
	}

	if f.log == nil {
		f.log = zap.NewNop().Sugar()
	}

	if f.cfg == nil {
		err = ErrConfigMissing
		return
	}

	if f.watcher == nil {
		f.watcher, err = NewWatcher(f.cfg, f.log)
		if err != nil {
			return
		}
	}

	ret = f

	f.log.Debugw("Create a new fswatch.",
		"backend", f.cfg.Backend,
		"paths", f.cfg.Paths,
	)

	return
}

func WithConfig(cfg *config.Config) Opt {
	return func(f *FSWatch) (ret *FSWatch, err error) {
		if cfg == nil {
			err = ErrConfigMissing
			return
		}

		f.cfg = cfg
		ret = f
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(f *FSWatch) (ret *FSWatch, err error) {
		f.log = log
		ret = f
		return
	}
}

func WithWatcher(w interfaces.Watcher) Opt {
	return func(f *FSWatch) (ret *FSWatch, err error) {
		if w == nil {
			err = ErrWatcherMissing
			return
		}

		f.watcher = w
		ret = f
		return
	}
}
