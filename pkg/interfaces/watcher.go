// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package interfaces

import (
	"context"

	"github.com/black-desk/fswatch/pkg/types"
)

// Watcher is implemented by every watcher backend.
//
// Add seeds the watch state and may be called before or after Init.
// Init starts native delivery, calling it twice is a no-op.
// Next pulls one event, blocking until one is available.
// The sequence never ends on its own
// and cannot be restarted once Close is called.
type Watcher interface {
	Add(pattern string) error
	Init() error
	Watched() []string
	Next(ctx context.Context) (types.Event, error)
	Close() error
}
