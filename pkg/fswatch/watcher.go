// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fswatch

import (
	"fmt"

	"github.com/black-desk/fswatch/pkg/fswatch/config"
	"github.com/black-desk/fswatch/pkg/inotifywatcher"
	"github.com/black-desk/fswatch/pkg/interfaces"
	"github.com/black-desk/fswatch/pkg/notifywatcher"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// NewWatcher builds the backend selected by cfg.
func NewWatcher(
	cfg *config.Config, log *zap.SugaredLogger,
) (
	ret interfaces.Watcher, err error,
) {
	defer Wrap(&err, "create %s watcher", cfg.Backend)

	var (
		inotifyWatcher *inotifywatcher.Watcher
		notifyWatcher  *notifywatcher.Watcher
	)

	switch cfg.Backend {
	case config.BackendInotify:
		inotifyWatcher, err = inotifywatcher.New(
			inotifywatcher.WithRules(cfg.RuleSet()),
			inotifywatcher.WithLogger(log),
			inotifywatcher.WithRotation(
				cfg.Rotation.Timeout,
				cfg.Rotation.Interval,
			),
		)
		if err != nil {
			return
		}
		ret = inotifyWatcher
	case config.BackendNotify, config.BackendFSNotify:
		opts := []notifywatcher.Opt{
			notifywatcher.WithRules(cfg.RuleSet()),
			notifywatcher.WithLogger(log),
			notifywatcher.WithQueueSize(cfg.QueueSize),
		}
		if cfg.Backend == config.BackendFSNotify {
			opts = append(opts, notifywatcher.WithSubscriber(
				notifywatcher.NewFSNotifySubscriber(log),
			))
		}

		notifyWatcher, err = notifywatcher.New(opts...)
		if err != nil {
			return
		}
		ret = notifyWatcher
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}

	return
}
