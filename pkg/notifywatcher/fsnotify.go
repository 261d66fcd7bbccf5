// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FSNotifySubscriber emulates recursive roots on top of fsnotify
// by watching every directory below them,
// including the ones created later.
type FSNotifySubscriber struct {
	log *zap.SugaredLogger
}

var _ Subscriber = &FSNotifySubscriber{}

func NewFSNotifySubscriber(log *zap.SugaredLogger) *FSNotifySubscriber {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &FSNotifySubscriber{log: log}
}

func (s *FSNotifySubscriber) Subscribe(
	ctx context.Context, roots []Root, out chan<- Record,
) (err error) {
	defer Wrap(&err, "subscribe to fsnotify")

	var watcher *fsnotify.Watcher
	watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return
	}
	defer watcher.Close()

	for i := range roots {
		if !roots[i].Recursive {
			addErr := watcher.Add(roots[i].Path)
			if addErr != nil {
				s.log.Errorw("Failed to watch directory.",
					"path", roots[i].Path,
					"error", addErr,
				)
			}
			continue
		}

		s.addTree(ctx, watcher, roots[i].Path, nil)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				err = ErrSubscriptionClosed
				return
			}

			record := Record{
				Path:  event.Name,
				Flags: fromFSNotifyOp(event.Op),
			}
			if record.Flags == 0 {
				continue
			}

			if isDir(record.Path) {
				record.Flags |= FlagIsDir
			}

			if !send(ctx, out, record) {
				return
			}

			if record.Flags.Has(FlagIsDir) && record.Flags.Has(FlagCreated) &&
				inRecursiveRoot(roots, record.Path) {
				// Files may land in the new directory
				// before its watch is in place.
				s.addTree(ctx, watcher, record.Path, out)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				err = ErrSubscriptionClosed
				return
			}

			s.log.Errorw("Errors occurred in fsnotify.",
				"error", watchErr,
			)
		}
	}
}

// addTree watches every directory below root.
// When out is not nil, existing files are reported as created.
func (s *FSNotifySubscriber) addTree(
	ctx context.Context, watcher *fsnotify.Watcher, root string, out chan<- Record,
) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			s.log.Errorw("Failed to walk directory.",
				"path", path,
				"error", err,
			)
			return nil
		}

		if !d.IsDir() {
			if out != nil && d.Type().IsRegular() &&
				!send(ctx, out, Record{Path: path, Flags: FlagCreated}) {
				return ctx.Err()
			}
			return nil
		}

		addErr := watcher.Add(path)
		if addErr != nil {
			s.log.Errorw("Failed to watch directory.",
				"path", path,
				"error", addErr,
			)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Errorw("Failed to walk directory.",
			"path", root,
			"error", err,
		)
	}
}

func inRecursiveRoot(roots []Root, path string) bool {
	for i := range roots {
		if roots[i].Recursive && roots[i].Contains(path) {
			return true
		}
	}
	return false
}

func fromFSNotifyOp(op fsnotify.Op) (ret Flag) {
	if op.Has(fsnotify.Create) {
		ret |= FlagCreated
	}
	if op.Has(fsnotify.Remove) {
		ret |= FlagRemoved
	}
	if op.Has(fsnotify.Rename) {
		ret |= FlagRenamed
	}
	if op.Has(fsnotify.Write) {
		ret |= FlagModified
	}
	return
}

func send(ctx context.Context, out chan<- Record, record Record) bool {
	select {
	case out <- record:
		return true
	case <-ctx.Done():
		return false
	}
}
