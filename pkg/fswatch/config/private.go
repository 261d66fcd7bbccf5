// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"runtime"

	"github.com/black-desk/fswatch/pkg/inotifywatcher"
	"github.com/black-desk/fswatch/pkg/notifywatcher"
	"github.com/black-desk/fswatch/pkg/rules"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	if c.Backend == "" || c.Backend == BackendAuto {
		c.Backend = BackendNotify
		if runtime.GOOS == "linux" {
			c.Backend = BackendInotify
		}

		c.log.Infow(
			"Backend auto detection done.",
			"backend", c.Backend,
		)
	}

	if len(c.Paths) == 0 {
		c.log.Warnw("No paths in config.")
	}

	if c.Rotation == nil {
		c.Rotation = &Rotation{}
	}
	if c.Rotation.Timeout == 0 {
		c.Rotation.Timeout = inotifywatcher.DefaultRotationTimeout
	}
	if c.Rotation.Interval == 0 {
		c.Rotation.Interval = inotifywatcher.DefaultRotationInterval
	}

	if c.QueueSize == 0 {
		c.QueueSize = notifywatcher.DefaultQueueSize
	}

	c.rules, err = c.compileRules()
	if err != nil {
		return
	}

	return
}

func (c *Config) compileRules() (ret *rules.RuleSet, err error) {
	defer Wrap(&err, "compile rules")

	var include, exclude []rules.Rule

	include, err = compile(c.Include)
	if err != nil {
		return
	}

	exclude, err = compile(c.Exclude)
	if err != nil {
		return
	}

	ret, err = rules.New(
		rules.WithInclude(include...),
		rules.WithExclude(exclude...),
	)
	return
}

func compile(items []Rule) (ret []rules.Rule, err error) {
	for i := range items {
		var rule rules.Rule
		if items[i].Glob != "" {
			rule, err = rules.NewGlob(items[i].Glob)
		} else {
			rule, err = rules.NewRegex(items[i].Regex)
		}
		if err != nil {
			return
		}

		ret = append(ret, rule)
	}

	return
}
