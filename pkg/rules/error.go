// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import "errors"

var (
	ErrInvalidRule = errors.New("rule is not initialized.")
)
