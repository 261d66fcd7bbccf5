// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rules_test

import (
	"testing"

	. "github.com/black-desk/fswatch/pkg/rules"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRules(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rules Suite")
}

func mustNew(opts ...Opt) *RuleSet {
	s, err := New(opts...)
	Expect(err).To(Succeed())
	return s
}

var _ = Describe("Rule", func() {
	DescribeTable("glob rule",
		func(pattern, path string, expect bool) {
			rule, err := NewGlob(pattern)
			Expect(err).To(Succeed())
			Expect(rule.Kind()).To(Equal(KindGlob))
			Expect(rule.Matches(path)).To(Equal(expect))
		},
		Entry("star crosses separators", "*.tmp", "/data/b.tmp", true),
		Entry("literal directory prefix", "/data/*.log", "/data/a.log", true),
		Entry("wrong extension", "*.tmp", "/data/a.log", false),
		Entry("character class", "/data/[ab].log", "/data/c.log", false),
	)

	DescribeTable("regex rule",
		func(pattern, path string, expect bool) {
			rule, err := NewRegex(pattern)
			Expect(err).To(Succeed())
			Expect(rule.Kind()).To(Equal(KindRegex))
			Expect(rule.Matches(path)).To(Equal(expect))
		},
		Entry("anchored prefix", "^/var/log/", "/var/log/syslog", true),
		Entry("unanchored suffix", `\.gz$`, "/var/log/syslog.1.gz", true),
		Entry("no match", `^/etc/`, "/var/log/syslog", false),
	)

	It("should treat paths that are not text as non-matching", func() {
		rule, err := NewRegex(".*")
		Expect(err).To(Succeed())
		Expect(rule.Matches("/data/\xff\xfe")).To(BeFalse())
	})

	It("should fail to compile a broken regex", func() {
		_, err := NewRegex("(")
		Expect(err).To(MatchError(ErrInvalidRule))
	})
})

var _ = Describe("RuleSet", func() {
	It("should admit everything without rules", func() {
		s := mustNew()
		Expect(s.Matches("/anything")).To(BeTrue())
		Expect(s.Matches("")).To(BeTrue())
	})

	It("should reject a path matched by any exclude rule regardless of includes", func() {
		s := mustNew(
			WithIncludeGlobs("*.tmp"),
			WithExcludeGlobs("*.log", "*.tmp"),
		)
		Expect(s.Matches("/data/b.tmp")).To(BeFalse())
	})

	It("should require every include rule to match", func() {
		s := mustNew(
			WithIncludeGlobs("/data/*"),
			WithIncludeRegexes(`\.log$`),
		)
		Expect(s.Matches("/data/a.log")).To(BeTrue())
		Expect(s.Matches("/data/a.txt")).To(BeFalse())
		Expect(s.Matches("/other/a.log")).To(BeFalse())
	})

	It("should depend only on excludes when the include list is empty", func() {
		s := mustNew(WithExcludeRegexes(`\.tmp$`))
		Expect(s.Matches("/data/a.log")).To(BeTrue())
		Expect(s.Matches("/data/b.tmp")).To(BeFalse())
	})

	It("should not be built from a zero rule", func() {
		_, err := New(WithInclude(Rule{}))
		Expect(err).To(MatchError(ErrInvalidRule))
	})

	It("should report a compile failure from string options", func() {
		_, err := New(WithExcludeRegexes("("))
		Expect(err).To(HaveOccurred())
	})

	It("should hand out copies of its rules", func() {
		s := mustNew(WithIncludeGlobs("*"), WithExcludeGlobs("*.tmp"))
		include := s.Include()
		include[0] = Rule{}
		Expect(s.Include()[0].Kind()).To(Equal(KindGlob))
		Expect(s.Exclude()).To(HaveLen(1))
	})
})
