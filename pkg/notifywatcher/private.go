// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/black-desk/fswatch/pkg/types"
)

func (w *Watcher) addPath(path string) (err error) {
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

	if !info.IsDir() {
		if w.files.Add(path) {
			w.log.Infow("Path added to watcher.",
				"path", path,
			)
		}
		w.pinned.Add(path)
		w.addRoot(Root{Path: filepath.Dir(path)})
		return
	}

	err = filepath.WalkDir(path, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			w.log.Errorw("Failed to walk directory.",
				"path", file,
				"error", err,
			)
			return nil
		}

		if !d.Type().IsRegular() || !w.rules.Matches(file) {
			return nil
		}

		if w.files.Add(file) {
			w.log.Infow("Path added to watcher.",
				"path", file,
			)
		}
		return nil
	})
	if err != nil {
		return
	}

	w.addRoot(Root{Path: path, Recursive: true})
	return
}

// addRoot records root.
// A recursive root replaces a non-recursive one on the same directory.
func (w *Watcher) addRoot(root Root) {
	i := slices.IndexFunc(w.roots, func(r Root) bool {
		return r.Path == root.Path
	})
	if i != -1 && (w.roots[i].Recursive || !root.Recursive) {
		return
	}

	if !root.Recursive && w.covers(root.Path) {
		return
	}

	if w.pool != nil {
		w.log.Warnw("Subscription already started, new root ignored.",
			"root", root.Path,
			"recursive", root.Recursive,
		)
		return
	}

	if i == -1 {
		w.roots = append(w.roots, root)
	} else {
		w.roots[i] = root
	}

	w.log.Debugw("Root recorded.",
		"root", root.Path,
		"recursive", root.Recursive,
	)
}

// covers reports whether a creation at path belongs to what was added.
func (w *Watcher) covers(path string) bool {
	if w.pinned.Contains(path) {
		return true
	}

	for i := range w.roots {
		if w.roots[i].Recursive && w.roots[i].Contains(path) {
			return true
		}
	}

	return false
}

// reconcile applies one record to the tracked files.
// Flags are handled in the order removed, renamed, modified, created.
func (w *Watcher) reconcile(record Record, events []types.Event) []types.Event {
	if record.Flags.Has(FlagIsDir) {
		return events
	}

	path := record.Path

	if record.Flags.Has(FlagRemoved) {
		events = w.handleRemove(path, events)
	}

	if record.Flags.Has(FlagRenamed) {
		if exists(path) {
			events = w.handleCreate(path, events)
		} else {
			events = w.handleRemove(path, events)
		}
	}

	if record.Flags.Has(FlagModified) && w.files.Contains(path) {
		events = append(events, types.Write(path))
	}

	if record.Flags.Has(FlagCreated) {
		events = w.handleCreate(path, events)
	}

	return events
}

func (w *Watcher) handleRemove(path string, events []types.Event) []types.Event {
	if !w.files.Contains(path) || exists(path) {
		return events
	}

	w.files.Remove(path)

	w.log.Infow("Path removed from watcher.",
		"path", path,
	)

	return append(events, types.Delete(path))
}

func (w *Watcher) handleCreate(path string, events []types.Event) []types.Event {
	if w.files.Contains(path) || !exists(path) {
		return events
	}

	if !w.covers(path) {
		w.log.Debugw("Created path is outside of added paths.",
			"path", path,
		)
		return events
	}

	if !w.rules.Matches(path) {
		w.log.Debugw("Created path excluded.",
			"path", path,
		)
		return events
	}

	w.files.Add(path)

	w.log.Infow("Path added to watcher.",
		"path", path,
	)

	return append(events, types.Create(path))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// forward moves records from in to out without ever blocking in.
// Records are kept in memory until out is ready.
func forward(ctx context.Context, in <-chan Record, out chan<- Record) {
	var buffered []Record

	for in != nil || len(buffered) > 0 {
		var (
			sendCh chan<- Record
			head   Record
		)

		if len(buffered) > 0 {
			sendCh = out
			head = buffered[0]
		}

		select {
		case <-ctx.Done():
			return
		case record, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			buffered = append(buffered, record)
		case sendCh <- head:
			buffered = buffered[1:]
		}
	}
}
