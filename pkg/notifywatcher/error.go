// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import "errors"

var (
	ErrRulesMissing       = errors.New("rules are missing.")
	ErrSubscriberMissing  = errors.New("subscriber is missing.")
	ErrNotInitialized     = errors.New("watcher is not initialized.")
	ErrSubscriptionClosed = errors.New("subscription closed unexpectedly.")
)
