// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

type EventType uint8

const (
	EventTypeCreate EventType = iota // Create
	EventTypeWrite                   // Write
	EventTypeDelete                  // Delete
	// EventTypeInit marks a path that was already being watched
	// when the stream started.
	EventTypeInit // Init
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=EventType -linecomment

type Event struct {
	Type EventType
	Path string
}

func Create(path string) Event { return Event{Type: EventTypeCreate, Path: path} }
func Write(path string) Event  { return Event{Type: EventTypeWrite, Path: path} }
func Delete(path string) Event { return Event{Type: EventTypeDelete, Path: path} }
func Init(path string) Event   { return Event{Type: EventTypeInit, Path: path} }

func (e Event) String() string {
	return e.Type.String() + "(" + e.Path + ")"
}
