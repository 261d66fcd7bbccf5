// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package inotifywatcher

import (
	"bytes"
	"errors"
	"os"
	"unsafe"

	"github.com/black-desk/fswatch/pkg/types"
	"github.com/black-desk/fswatch/pkg/watchstate"
	. "github.com/black-desk/lib/go/errwrap"
	"golang.org/x/sys/unix"
)

type inotify struct {
	fd int
	// file wraps fd so that Read parks in the runtime poller
	// and Close wakes it up.
	file *os.File
}

func NewNative() (ret Native, err error) {
	defer Wrap(&err, "initialize inotify")

	var fd int
	fd, err = unix.InotifyInit1(unix.IN_CLOEXEC | unix.IN_NONBLOCK)
	if err != nil {
		err = os.NewSyscallError("inotify_init1", err)
		return
	}

	ret = &inotify{
		fd:   fd,
		file: os.NewFile(uintptr(fd), "inotify"),
	}
	return
}

func (n *inotify) AddWatch(path string, mask Mask) (handle watchstate.Handle, err error) {
	var wd int
	wd, err = unix.InotifyAddWatch(n.fd, path, toUnixMask(mask))
	if err != nil {
		err = &os.PathError{Op: "inotify_add_watch", Path: path, Err: err}
		return
	}

	handle = watchstate.Handle(wd)
	return
}

func (n *inotify) RemoveWatch(handle watchstate.Handle) (err error) {
	_, err = unix.InotifyRmWatch(n.fd, uint32(handle))
	if err != nil {
		err = os.NewSyscallError("inotify_rm_watch", err)
	}
	return
}

func (n *inotify) Read(buf []byte) (records []Record, err error) {
	var size int
	size, err = n.file.Read(buf)
	if errors.Is(err, os.ErrClosed) {
		err = types.ErrClosed
		return
	}
	if err != nil {
		return
	}

	if size < unix.SizeofInotifyEvent {
		err = ErrShortRead
		return
	}

	offset := 0
	for offset+unix.SizeofInotifyEvent <= size {
		raw := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
		offset += unix.SizeofInotifyEvent

		var name string
		if raw.Len > 0 {
			end := offset + int(raw.Len)
			if end > size {
				break
			}

			nameBytes := buf[offset:end]
			if i := bytes.IndexByte(nameBytes, 0); i != -1 {
				nameBytes = nameBytes[:i]
			}
			name = string(nameBytes)
			offset = end
		}

		records = append(records, Record{
			Handle: watchstate.Handle(raw.Wd),
			Mask:   fromUnixMask(raw.Mask),
			Name:   name,
		})
	}

	return
}

func (n *inotify) Close() error {
	return n.file.Close()
}

func toUnixMask(mask Mask) (ret uint32) {
	if mask.Has(MaskCreate) {
		ret |= unix.IN_CREATE
	}
	if mask.Has(MaskDelete) {
		ret |= unix.IN_DELETE
	}
	if mask.Has(MaskModify) {
		ret |= unix.IN_MODIFY
	}
	if mask.Has(MaskMoveSelf) {
		ret |= unix.IN_MOVE_SELF
	}
	return
}

func fromUnixMask(raw uint32) (ret Mask) {
	if raw&unix.IN_CREATE != 0 {
		ret |= MaskCreate
	}
	if raw&unix.IN_DELETE != 0 {
		ret |= MaskDelete
	}
	if raw&unix.IN_MODIFY != 0 {
		ret |= MaskModify
	}
	if raw&unix.IN_MOVE_SELF != 0 {
		ret |= MaskMoveSelf
	}
	if raw&unix.IN_ISDIR != 0 {
		ret |= MaskIsDir
	}
	if raw&unix.IN_IGNORED != 0 {
		ret |= MaskIgnored
	}
	if raw&unix.IN_Q_OVERFLOW != 0 {
		ret |= MaskOverflow
	}
	return
}
