// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package inotifywatcher

import (
	"github.com/black-desk/fswatch/pkg/watchstate"
)

// Mask is a set of native change flags,
// used both to register a watch and to describe a record.
type Mask uint32

const (
	MaskCreate Mask = 1 << iota
	MaskDelete
	MaskModify
	MaskMoveSelf
	MaskIsDir
	MaskIgnored
	MaskOverflow
)

const (
	// DirMask is registered for directories.
	// inotify does not recurse, so directories only report children coming and going.
	DirMask = MaskCreate | MaskDelete
	// FileMask is registered for files.
	FileMask = MaskModify | MaskMoveSelf
)

func (m Mask) Has(flag Mask) bool {
	return m&flag != 0
}

// Record is one raw notification as read from the native layer.
// Name is the child entry name for records reported on a directory,
// empty otherwise.
type Record struct {
	Handle watchstate.Handle
	Mask   Mask
	Name   string
}

// Native is the per-path notification primitive the watcher drives.
type Native interface {
	AddWatch(path string, mask Mask) (watchstate.Handle, error)
	RemoveWatch(handle watchstate.Handle) error
	// Read blocks until at least one record is available.
	// It returns types.ErrClosed once Close has been called.
	Read(buf []byte) ([]Record, error)
	Close() error
}
