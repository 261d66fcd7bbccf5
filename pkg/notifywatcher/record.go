// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"context"
	"path/filepath"
	"strings"
)

// Flag describes what happened to a path.
// Several flags may be set on one record.
type Flag uint8

const (
	FlagCreated Flag = 1 << iota
	FlagRemoved
	FlagRenamed
	FlagModified
	FlagIsDir
)

func (f Flag) Has(flag Flag) bool {
	return f&flag != 0
}

func (f Flag) String() string {
	names := []string{}
	for _, item := range []struct {
		flag Flag
		name string
	}{
		{FlagCreated, "Created"},
		{FlagRemoved, "Removed"},
		{FlagRenamed, "Renamed"},
		{FlagModified, "Modified"},
		{FlagIsDir, "IsDir"},
	} {
		if f.Has(item.flag) {
			names = append(names, item.name)
		}
	}
	return strings.Join(names, "|")
}

// Record is one raw notification for one path.
type Record struct {
	Path  string
	Flags Flag
}

// Root is a directory a subscription covers.
// A recursive root covers its whole tree,
// otherwise only its direct children.
type Root struct {
	Path      string
	Recursive bool
}

// Contains reports whether a record for path can come from r.
func (r Root) Contains(path string) bool {
	if path == r.Path {
		return true
	}

	if !r.Recursive {
		return filepath.Dir(path) == r.Path
	}

	prefix := r.Path
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}

// Subscriber delivers records for paths inside a set of roots.
type Subscriber interface {
	// Subscribe blocks until ctx is done or the subscription breaks,
	// sending every record into out.
	// It must not close out.
	Subscribe(ctx context.Context, roots []Root, out chan<- Record) error
}
