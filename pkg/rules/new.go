// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	. "github.com/black-desk/lib/go/errwrap"
)

// RuleSet decides whether a path is admitted to the watcher.
// It is never mutated after New returns,
// so it can be read from several goroutines without locking.
type RuleSet struct {
	include []Rule
	exclude []Rule
}

type Opt func(s *RuleSet) (ret *RuleSet, err error)

func New(opts ...Opt) (ret *RuleSet, err error) {
	defer Wrap(&err, "create rule set")

	s := &RuleSet{}
	for i := range opts {
		s, err = opts[i](s)
		if err != nil {
			return
		}
	}

	ret = s
	return
}

func WithInclude(rules ...Rule) Opt {
	return func(s *RuleSet) (ret *RuleSet, err error) {
		for i := range rules {
			if rules[i].kind == 0 {
				err = ErrInvalidRule
				return
			}
		}

		s.include = append(s.include, rules...)
		ret = s
		return
	}
}

func WithExclude(rules ...Rule) Opt {
	return func(s *RuleSet) (ret *RuleSet, err error) {
		for i := range rules {
			if rules[i].kind == 0 {
				err = ErrInvalidRule
				return
			}
		}

		s.exclude = append(s.exclude, rules...)
		ret = s
		return
	}
}

func WithIncludeGlobs(patterns ...string) Opt {
	return withCompiled(NewGlob, WithInclude, patterns)
}

func WithIncludeRegexes(patterns ...string) Opt {
	return withCompiled(NewRegex, WithInclude, patterns)
}

func WithExcludeGlobs(patterns ...string) Opt {
	return withCompiled(NewGlob, WithExclude, patterns)
}

func WithExcludeRegexes(patterns ...string) Opt {
	return withCompiled(NewRegex, WithExclude, patterns)
}

func withCompiled(
	compile func(string) (Rule, error),
	with func(...Rule) Opt,
	patterns []string,
) Opt {
	return func(s *RuleSet) (ret *RuleSet, err error) {
		rules := make([]Rule, 0, len(patterns))
		for i := range patterns {
			var rule Rule
			rule, err = compile(patterns[i])
			if err != nil {
				return
			}
			rules = append(rules, rule)
		}

		return with(rules...)(s)
	}
}
