// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	"fmt"
	"unicode/utf8"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/gobwas/glob"
	"github.com/grafana/regexp"
)

type Kind uint8

const (
	KindGlob  Kind = iota + 1 // glob
	KindRegex                 // regex
)

// Rule is a predicate over a path.
// It is either a glob or a regular expression, nothing else.
type Rule struct {
	kind    Kind
	pattern string

	glob  glob.Glob
	regex *regexp.Regexp
}

// NewGlob compiles a shell style pattern.
// `*` is allowed to cross path separators, so "*.tmp" matches "/data/b.tmp".
func NewGlob(pattern string) (ret Rule, err error) {
	defer Wrap(&err, "compile glob rule %q", pattern)

	var g glob.Glob
	g, err = glob.Compile(pattern)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidRule, err)
		return
	}

	ret = Rule{kind: KindGlob, pattern: pattern, glob: g}
	return
}

func NewRegex(pattern string) (ret Rule, err error) {
	defer Wrap(&err, "compile regex rule %q", pattern)

	var re *regexp.Regexp
	re, err = regexp.Compile(pattern)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidRule, err)
		return
	}

	ret = Rule{kind: KindRegex, pattern: pattern, regex: re}
	return
}

func (r Rule) Kind() Kind {
	return r.kind
}

// Matches reports false for paths that are not valid UTF-8.
func (r Rule) Matches(path string) bool {
	if !utf8.ValidString(path) {
		return false
	}

	switch r.kind {
	case KindGlob:
		return r.glob.Match(path)
	case KindRegex:
		return r.regex.MatchString(path)
	}

	panic("this should never happened.")
}

func (r Rule) String() string {
	switch r.kind {
	case KindGlob:
		return fmt.Sprintf("rule [ glob: %s ]", r.pattern)
	case KindRegex:
		return fmt.Sprintf("rule [ regex: %s ]", r.pattern)
	}

	return "rule [ invalid ]"
}
