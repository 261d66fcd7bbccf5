// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package inotifywatcher

import "errors"

var (
	ErrRulesMissing  = errors.New("rules are missing.")
	ErrNativeMissing = errors.New("native notifier is missing.")
	ErrUnsupported   = errors.New("inotify is not supported on this platform.")
	ErrShortRead     = errors.New("short read from inotify.")
	ErrInvalidPeriod = errors.New("rotation timeout and interval must be positive.")
)
