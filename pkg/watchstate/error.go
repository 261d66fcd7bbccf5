// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watchstate

import "fmt"

type ErrPathExists struct {
	Path string
}

func (e *ErrPathExists) Error() string {
	return fmt.Sprintf("Path %s is already watched.", e.Path)
}

type ErrHandleExists struct {
	Handle Handle
	Path   string
}

func (e *ErrHandleExists) Error() string {
	return fmt.Sprintf("Watch handle %d is already used by %s.", e.Handle, e.Path)
}
