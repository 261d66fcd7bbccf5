// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
)

func (r *Rule) String() string {
	if r.Glob != "" {
		return fmt.Sprintf("rule [ glob: %s ]", r.Glob)
	} else if r.Regex != "" {
		return fmt.Sprintf("rule [ regex: %s ]", r.Regex)
	}

	panic("this should never happened")
}
