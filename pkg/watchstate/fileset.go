// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watchstate

// FileSet is the set of file paths a watcher currently knows about.
// It is not safe for concurrent use.
type FileSet struct {
	files map[string]struct{}
}

func NewFileSet() *FileSet {
	return &FileSet{files: map[string]struct{}{}}
}

// Add reports whether path was not tracked before.
func (s *FileSet) Add(path string) bool {
	if _, ok := s.files[path]; ok {
		return false
	}
	s.files[path] = struct{}{}
	return true
}

// Remove reports whether path was tracked.
func (s *FileSet) Remove(path string) bool {
	if _, ok := s.files[path]; !ok {
		return false
	}
	delete(s.files, path)
	return true
}

func (s *FileSet) Contains(path string) bool {
	_, ok := s.files[path]
	return ok
}

func (s *FileSet) Len() int {
	return len(s.files)
}

func (s *FileSet) Paths() []string {
	ret := make([]string, 0, len(s.files))
	for path := range s.files {
		ret = append(ret, path)
	}
	return ret
}
