// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/black-desk/fswatch/pkg/fswatch"
	"github.com/black-desk/fswatch/pkg/fswatch/config"
	"github.com/black-desk/fswatch/pkg/interfaces"
	"go.uber.org/zap"
)

func provideWatcher(
	cfg *config.Config, logger *zap.SugaredLogger,
) (
	interfaces.Watcher, error,
) {
	return fswatch.NewWatcher(cfg, logger)
}

func provideFSWatch(
	w interfaces.Watcher,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) (
	*fswatch.FSWatch, error,
) {
	return fswatch.New(
		fswatch.WithConfig(cfg),
		fswatch.WithLogger(logger),
		fswatch.WithWatcher(w),
	)
}
