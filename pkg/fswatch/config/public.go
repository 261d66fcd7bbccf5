// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "github.com/black-desk/fswatch/pkg/rules"

// RuleSet returns the rules compiled from Include and Exclude.
func (c *Config) RuleSet() *rules.RuleSet {
	return c.rules
}
