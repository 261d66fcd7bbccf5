// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package inotifywatcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/black-desk/fswatch/pkg/types"
	"github.com/black-desk/fswatch/pkg/watchstate"
)

// addPath registers a single concrete path.
// added is false when the path was already watched.
func (w *Watcher) addPath(path string) (added bool, err error) {
	if !utf8.ValidString(path) {
		err = types.ErrInvalidPath
		return
	}

	if !w.rules.Matches(path) {
		w.log.Infow("Path excluded from watcher.",
			"path", path,
		)
		err = types.ErrExcluded
		return
	}

	var info os.FileInfo
	info, err = os.Stat(path)
	if err != nil {
		return
	}

	mask := FileMask
	if info.IsDir() {
		mask = DirMask
	}

	if w.table.ContainsPath(path) {
		w.log.Warnw("Path is already watched.",
			"path", path,
		)
		return
	}

	var handle watchstate.Handle
	handle, err = w.native.AddWatch(path, mask)
	if err != nil {
		return
	}

	err = w.table.Insert(handle, path)
	if err != nil {
		// inotify hands out the same handle for the same inode,
		// the watch belongs to the path inserted first.
		w.log.Warnw("Duplicate watch handle.",
			"path", path,
			"handle", handle,
			"error", err,
		)
		err = nil
		return
	}

	added = true

	w.log.Infow("Path added to watcher.",
		"path", path,
		"handle", handle,
	)
	w.log.Debugw("Watch table updated.",
		"watching", w.table.Len(),
	)

	return
}

// addTree registers every entry below root, root itself excluded,
// and returns the newly watched regular files in lexical order.
func (w *Watcher) addTree(root string) (files []string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			w.log.Errorw("Failed to walk new directory.",
				"path", path,
				"error", err,
			)
			return nil
		}

		if path == root {
			return nil
		}

		added, addErr := w.addPath(path)
		if addErr != nil && !errors.Is(addErr, types.ErrExcluded) {
			w.log.Errorw("Failed to add path to watcher.",
				"path", path,
				"error", addErr,
			)
		}

		if added && d.Type().IsRegular() {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		w.log.Errorw("Failed to walk new directory.",
			"path", root,
			"error", err,
		)
	}

	sort.Strings(files)
	return
}

func (w *Watcher) dispatch(record Record, events []types.Event) []types.Event {
	if record.Mask.Has(MaskOverflow) {
		w.log.Warnw("Inotify event queue overflowed, events were lost.")
		return events
	}

	base, ok := w.table.PathOf(record.Handle)
	if !ok {
		w.log.Warnw("Event for unknown watch handle.",
			"handle", record.Handle,
			"mask", record.Mask,
			"name", record.Name,
		)
		return events
	}

	switch {
	case record.Mask.Has(MaskCreate):
		return w.handleCreate(base, record, events)
	case record.Mask.Has(MaskDelete):
		return w.handleDelete(base, record, events)
	case record.Mask.Has(MaskModify):
		return w.handleModify(base, events)
	case record.Mask.Has(MaskMoveSelf):
		return w.handleMove(base, events)
	case record.Mask.Has(MaskIgnored):
		w.table.RemoveByHandle(record.Handle)
		w.log.Debugw("Watch removed by kernel.",
			"path", base,
			"handle", record.Handle,
		)
	}

	return events
}

func (w *Watcher) handleCreate(base string, record Record, events []types.Event) []types.Event {
	if record.Name == "" {
		return events
	}

	path := filepath.Join(base, record.Name)
	tracked := w.table.ContainsPath(path)

	_, err := w.addPath(path)
	if err != nil && !errors.Is(err, types.ErrExcluded) {
		w.log.Errorw("Failed to add created path to watcher.",
			"path", path,
			"error", err,
		)
	}

	// The path was created whether or not a watch could be placed on it.
	if !tracked && w.rules.Matches(path) {
		events = append(events, types.Create(path))
	}

	if !record.Mask.Has(MaskIsDir) {
		return events
	}

	// Entries created before the watch on path was in place
	// would never be reported otherwise.
	for _, file := range w.addTree(path) {
		events = append(events, types.Create(file))
	}

	return events
}

func (w *Watcher) handleDelete(base string, record Record, events []types.Event) []types.Event {
	if record.Name == "" {
		return events
	}

	path := filepath.Join(base, record.Name)

	if handle, ok := w.table.RemoveByPath(path); ok {
		w.log.Infow("Path removed from watcher.",
			"path", path,
			"handle", handle,
		)
		w.log.Debugw("Watch table updated.",
			"watching", w.table.Len(),
		)
	}

	if !record.Mask.Has(MaskIsDir) {
		events = append(events, types.Delete(path))
	}

	return events
}

func (w *Watcher) handleModify(path string, events []types.Event) []types.Event {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return events
	}

	return append(events, types.Write(path))
}

// handleMove deals with rotation:
// the watched file was renamed away and is expected to come back.
func (w *Watcher) handleMove(path string, events []types.Event) []types.Event {
	w.log.Infow("Watched path was moved.",
		"path", path,
	)

	if handle, ok := w.table.RemoveByPath(path); ok {
		err := w.native.RemoveWatch(handle)
		if err != nil {
			w.log.Errorw("Failed to remove watch of moved path.",
				"path", path,
				"handle", handle,
				"error", err,
			)
		}

		w.log.Debugw("Watch table updated.",
			"watching", w.table.Len(),
		)

		events = append(events, types.Delete(path))
	}

	target, err := os.Readlink(path)
	if err != nil {
		target = path
	} else if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}

	if !w.waitFor(target) {
		w.log.Errorw("Rotation failed, path did not come back in time.",
			"path", path,
			"target", target,
			"timeout", w.rotationTimeout,
		)
		return events
	}

	added, err := w.addPath(target)
	if err != nil && !errors.Is(err, types.ErrExcluded) {
		w.log.Errorw("Failed to add rotated path to watcher.",
			"path", target,
			"error", err,
		)
	}

	if added {
		events = append(events, types.Create(target))
	}

	return events
}

// pull reads one batch and reconciles it.
// A closed native layer yields no events and no error.
func (w *Watcher) pull() (events []types.Event, err error) {
	var records []Record
	records, err = w.native.Read(w.buf)
	if errors.Is(err, types.ErrClosed) {
		w.closed.Store(true)
		err = nil
		return
	}
	if err != nil {
		return
	}

	for i := range records {
		events = w.dispatch(records[i], events)
	}

	return
}

// backoff sleeps for delay unless ctx is done or the watcher is closed first.
func (w *Watcher) backoff(ctx context.Context, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	case <-w.done:
	}
}

// waitFor polls for path to exist until the rotation timeout expires
// or the watcher is closed.
func (w *Watcher) waitFor(path string) bool {
	timeout := time.NewTimer(w.rotationTimeout)
	defer timeout.Stop()

	ticker := time.NewTicker(w.rotationInterval)
	defer ticker.Stop()

	for {
		if _, err := os.Stat(path); err == nil {
			return true
		}

		select {
		case <-timeout.C:
			return false
		case <-w.done:
			return false
		case <-ticker.C:
		}
	}
}
