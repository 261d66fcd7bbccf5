//go:build wireinject
// +build wireinject

// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/black-desk/fswatch/pkg/fswatch"
	"github.com/black-desk/fswatch/pkg/fswatch/config"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func injectedFSWatch(
	*config.Config, *zap.SugaredLogger,
) (
	*fswatch.FSWatch, error,
) {
	panic(wire.Build(set))
}

var set = wire.NewSet(
	provideFSWatch,
	provideWatcher,
)
