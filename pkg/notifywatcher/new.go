// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"context"
	"sync"

	"github.com/black-desk/fswatch/pkg/interfaces"
	"github.com/black-desk/fswatch/pkg/rules"
	"github.com/black-desk/fswatch/pkg/types"
	"github.com/black-desk/fswatch/pkg/watchstate"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Watcher tracks files below a set of root directories
// through a recursive subscription running in the background.
type Watcher struct {
	subscriber Subscriber
	rules      *rules.RuleSet
	files      *watchstate.FileSet
	log        *zap.SugaredLogger

	roots []Root
	// pinned are the files added one by one.
	// Their parents are non-recursive roots
	// that admit creations of these names only.
	pinned *watchstate.FileSet

	queueSize int

	pool      *pool.ContextPool
	cancel    context.CancelFunc
	queue     <-chan Record
	closeOnce sync.Once

	pending []types.Event
}

var _ interfaces.Watcher = &Watcher{}

func New(opts ...Opt) (ret *Watcher, err error) {
	defer Wrap(&err, "create notify watcher")

	w := &Watcher{
		files:     watchstate.NewFileSet(),
		pinned:    watchstate.NewFileSet(),
		queueSize: DefaultQueueSize,
	}

	for i := range opts {
		w, err = opts[i](w)
		if err != nil {
			return
		}
	}

	if w.rules == nil {
		err = ErrRulesMissing
		return
	}

	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}

	if w.subscriber == nil {
		w.subscriber = NewNotifySubscriber(w.log, w.queueSize)
	}

	ret = w

	w.log.Debugw("Create a new notify watcher.",
		"queue size", w.queueSize,
	)

	return
}

type Opt func(w *Watcher) (ret *Watcher, err error)

func WithRules(r *rules.RuleSet) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if r == nil {
			err = ErrRulesMissing
			return
		}

		w.rules = r
		ret = w
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		w.log = log
		ret = w
		return
	}
}

func WithSubscriber(s Subscriber) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if s == nil {
			err = ErrSubscriberMissing
			return
		}

		w.subscriber = s
		ret = w
		return
	}
}

// WithQueueSize sets the buffer of the default notify subscription.
// It has no effect together with WithSubscriber.
func WithQueueSize(size int) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if size > 0 {
			w.queueSize = size
		}

		ret = w
		return
	}
}
