// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

const DefaultConfig = `
version: 1
backend: auto
paths:
  - /var/log
  - /var/log/**/*
exclude:
  - glob: "*.gz"
`
