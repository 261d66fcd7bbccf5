// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/rjeczalik/notify"
	"go.uber.org/zap"
)

const DefaultQueueSize = 64

// NotifySubscriber watches every root recursively with one notify subscription.
type NotifySubscriber struct {
	log       *zap.SugaredLogger
	queueSize int
}

var _ Subscriber = &NotifySubscriber{}

func NewNotifySubscriber(log *zap.SugaredLogger, queueSize int) *NotifySubscriber {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &NotifySubscriber{log: log, queueSize: queueSize}
}

func (s *NotifySubscriber) Subscribe(
	ctx context.Context, roots []Root, out chan<- Record,
) (err error) {
	defer Wrap(&err, "subscribe to filesystem notifications")

	// FIXME:
	// github.com/rjeczalik/notify drop events if receiver is too slow.
	// https://github.com/rjeczalik/notify/issues/85
	// https://github.com/rjeczalik/notify/issues/98
	eventsIn := make(chan notify.EventInfo, s.queueSize)
	defer notify.Stop(eventsIn)

	for i := range roots {
		path := roots[i].Path
		if roots[i].Recursive {
			path = filepath.Join(path, "...")
		}

		err = notify.Watch(path, eventsIn, notify.All)
		if err != nil {
			return
		}

		s.log.Debugw("Root subscribed.",
			"root", roots[i].Path,
			"recursive", roots[i].Recursive,
		)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-eventsIn:
			record := Record{
				Path:  event.Path(),
				Flags: fromNotifyEvent(event.Event()),
			}

			if isDir(record.Path) {
				record.Flags |= FlagIsDir
			}

			s.log.Debugw("New filesystem event arrived.",
				"path", record.Path,
				"flags", record.Flags,
			)

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}
	}
}

func fromNotifyEvent(event notify.Event) (ret Flag) {
	if event&notify.Create != 0 {
		ret |= FlagCreated
	}
	if event&notify.Remove != 0 {
		ret |= FlagRemoved
	}
	if event&notify.Rename != 0 {
		ret |= FlagRenamed
	}
	if event&notify.Write != 0 {
		ret |= FlagModified
	}
	return
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
