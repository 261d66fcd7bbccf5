// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watchstate

import (
	"fmt"
)

// Handle is the token the native layer issued for one registered path.
type Handle int

type entry struct {
	handle Handle
	path   string
	used   bool
}

// Table pairs handles with paths one to one.
// Entries live in a single slice,
// byHandle and byPath only point at slots of that slice
// and are changed together by insert and remove.
//
// Table is not safe for concurrent use.
type Table struct {
	entries  []entry
	free     []int
	byHandle map[Handle]int
	byPath   map[string]int
}

func NewTable() *Table {
	return &Table{
		byHandle: map[Handle]int{},
		byPath:   map[string]int{},
	}
}

// Insert rejects a path or a handle that is already present,
// the existing entry is left untouched.
func (t *Table) Insert(handle Handle, path string) (err error) {
	if _, ok := t.byPath[path]; ok {
		err = &ErrPathExists{Path: path}
		return
	}

	if slot, ok := t.byHandle[handle]; ok {
		err = &ErrHandleExists{Handle: handle, Path: t.entries[slot].path}
		return
	}

	t.insert(handle, path)
	return
}

func (t *Table) RemoveByPath(path string) (handle Handle, ok bool) {
	var slot int
	slot, ok = t.byPath[path]
	if !ok {
		return
	}

	handle = t.entries[slot].handle
	t.remove(slot)
	return
}

func (t *Table) RemoveByHandle(handle Handle) (path string, ok bool) {
	var slot int
	slot, ok = t.byHandle[handle]
	if !ok {
		return
	}

	path = t.entries[slot].path
	t.remove(slot)
	return
}

func (t *Table) PathOf(handle Handle) (path string, ok bool) {
	var slot int
	slot, ok = t.byHandle[handle]
	if !ok {
		return
	}

	path = t.entries[slot].path
	return
}

func (t *Table) HandleOf(path string) (handle Handle, ok bool) {
	var slot int
	slot, ok = t.byPath[path]
	if !ok {
		return
	}

	handle = t.entries[slot].handle
	return
}

func (t *Table) ContainsPath(path string) bool {
	_, ok := t.byPath[path]
	return ok
}

func (t *Table) Len() int {
	return len(t.byPath)
}

// Paths returns a snapshot in no particular order.
func (t *Table) Paths() []string {
	ret := make([]string, 0, len(t.byPath))
	for path := range t.byPath {
		ret = append(ret, path)
	}
	return ret
}

// Verify checks that both indices describe the same set of entries.
func (t *Table) Verify() error {
	if len(t.byHandle) != len(t.byPath) {
		return fmt.Errorf(
			"index size mismatch: %d handles, %d paths",
			len(t.byHandle), len(t.byPath),
		)
	}

	for handle, slot := range t.byHandle {
		e := t.entries[slot]
		if !e.used || e.handle != handle {
			return fmt.Errorf("handle %d points at a stale slot %d", handle, slot)
		}
		if t.byPath[e.path] != slot {
			return fmt.Errorf("handle %d has no reverse entry for %q", handle, e.path)
		}
	}

	return nil
}

func (t *Table) insert(handle Handle, path string) {
	e := entry{handle: handle, path: path, used: true}

	var slot int
	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
		t.entries[slot] = e
	} else {
		slot = len(t.entries)
		t.entries = append(t.entries, e)
	}

	t.byHandle[handle] = slot
	t.byPath[path] = slot
}

func (t *Table) remove(slot int) {
	e := t.entries[slot]
	delete(t.byHandle, e.handle)
	delete(t.byPath, e.path)
	t.entries[slot] = entry{}
	t.free = append(t.free, slot)
}
