// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"time"

	"github.com/black-desk/fswatch/pkg/rules"
	"go.uber.org/zap"
)

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// Backend selects how the filesystem is observed.
	// Empty means auto.
	Backend Backend `yaml:"backend" validate:"omitempty,oneof=auto inotify notify fsnotify"`
	// Paths are files, directories or doublestar patterns to watch.
	// With the inotify backend a directory only reports entries
	// appearing and disappearing in it,
	// add a pattern such as /var/log/**/* to watch the files as well.
	Paths []string `yaml:"paths" validate:"dive,required"`
	// A path is admitted when it matches every include rule
	// and no exclude rule.
	// No include rules admit every path.
	Include []Rule `yaml:"include" validate:"dive"`
	Exclude []Rule `yaml:"exclude" validate:"dive"`

	Rotation *Rotation `yaml:"rotation"`
	// QueueSize is the buffer of the native notification channel.
	QueueSize int `yaml:"queue-size" validate:"gte=0"`

	log   *zap.SugaredLogger `yaml:"-"`
	rules *rules.RuleSet
}

type Backend string

const (
	BackendAuto     Backend = "auto"
	BackendInotify  Backend = "inotify"
	BackendNotify   Backend = "notify"
	BackendFSNotify Backend = "fsnotify"
)

// Rule is either a glob or a regular expression.
type Rule struct {
	Glob  string `yaml:"glob" validate:"required_without=Regex,excluded_with=Regex"`
	Regex string `yaml:"regex" validate:"required_without=Glob,excluded_with=Glob"`
}

// Rotation describes how long the inotify backend waits
// for a rotated file to reappear.
type Rotation struct {
	Timeout  time.Duration `yaml:"timeout" validate:"gte=0"`
	Interval time.Duration `yaml:"interval" validate:"gte=0"`
}
