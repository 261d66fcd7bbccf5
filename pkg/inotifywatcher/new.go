// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package inotifywatcher

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/black-desk/fswatch/pkg/interfaces"
	"github.com/black-desk/fswatch/pkg/rules"
	"github.com/black-desk/fswatch/pkg/types"
	"github.com/black-desk/fswatch/pkg/watchstate"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

const (
	bufferSize = 8192

	maxReadFailures   = 5
	readRetryInterval = 10 * time.Millisecond

	DefaultRotationTimeout  = 5 * time.Second
	DefaultRotationInterval = 100 * time.Millisecond
)

// Watcher registers every path with the native layer on its own
// and reads native records synchronously on the goroutine calling Pull or Next.
type Watcher struct {
	native Native
	rules  *rules.RuleSet
	table  *watchstate.Table
	log    *zap.SugaredLogger

	rotationTimeout  time.Duration
	rotationInterval time.Duration

	buf     []byte
	pending []types.Event

	initialized bool
	closed      atomic.Bool
	closeOnce   sync.Once
	done        chan struct{}
}

var _ interfaces.Watcher = &Watcher{}

func New(opts ...Opt) (ret *Watcher, err error) {
	defer Wrap(&err, "create inotify watcher")

	w := &Watcher{
		table:            watchstate.NewTable(),
		rotationTimeout:  DefaultRotationTimeout,
		rotationInterval: DefaultRotationInterval,
		buf:              make([]byte, bufferSize),
		done:             make(chan struct{}),
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

	if w.native == nil {
		w.native, err = NewNative()
		if err != nil {
			return
		}
	}

	ret = w

	w.log.Debugw("Create a new inotify watcher.",
		"rotation timeout", w.rotationTimeout,
		"rotation interval", w.rotationInterval,
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

func WithNative(n Native) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if n == nil {
			err = ErrNativeMissing
			return
		}

		w.native = n
		ret = w
		return
	}
}

// WithRotation sets how long a rotated file is waited for
// and how often its reappearance is checked.
func WithRotation(timeout, interval time.Duration) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if timeout <= 0 || interval <= 0 {
			err = ErrInvalidPeriod
			return
		}

		w.rotationTimeout = timeout
		w.rotationInterval = interval
		ret = w
		return
	}
}
