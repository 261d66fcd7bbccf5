// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import "errors"

var (
	ErrExcluded     = errors.New("path is excluded by rules.")
	ErrInvalidPath  = errors.New("path is invalid.")
	ErrBlocking     = errors.New("failed to wait for filesystem events.")
	ErrStreamClosed = errors.New("filesystem event stream is closed.")
	ErrClosed       = errors.New("watcher is closed.")
)
