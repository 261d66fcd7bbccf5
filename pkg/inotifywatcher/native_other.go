// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package inotifywatcher

func NewNative() (Native, error) {
	return nil, ErrUnsupported
}
