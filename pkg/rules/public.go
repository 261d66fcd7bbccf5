// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

// Matches holds iff every include rule matches and no exclude rule does.
// An empty include list matches everything.
func (s *RuleSet) Matches(path string) bool {
	for i := range s.include {
		if !s.include[i].Matches(path) {
			return false
		}
	}

	for i := range s.exclude {
		if s.exclude[i].Matches(path) {
			return false
		}
	}

	return true
}

func (s *RuleSet) Include() []Rule {
	return append([]Rule(nil), s.include...)
}

func (s *RuleSet) Exclude() []Rule {
	return append([]Rule(nil), s.exclude...)
}
