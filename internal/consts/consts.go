// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package consts

const (
	CheckDocumentString = `
Go to check
1. documentation https://pkg.go.dev/github.com/black-desk/fswatch/cmd/fswatch
2. wiki https://github.com/black-desk/fswatch/wiki
for some help.
`
	FSWatchCfgPath = "/etc/fswatch/config.yaml"
)
