// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package inotifywatcher_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/black-desk/fswatch/pkg/inotifywatcher"
	"github.com/black-desk/fswatch/pkg/rules"
	"github.com/black-desk/fswatch/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Inotify watcher on a real inotify instance", func() {
	var (
		tmpDir string
		w      *Watcher
		events chan types.Event
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "fswatch-inotify-real-*")
		Expect(err).To(Succeed())

		ruleSet, err := rules.New(rules.WithExcludeGlobs("*.tmp"))
		Expect(err).To(Succeed())

		w, err = New(WithRules(ruleSet))
		Expect(err).To(Succeed())

		Expect(w.Add(tmpDir)).To(Succeed())
		Expect(w.Init()).To(Succeed())

		events = make(chan types.Event, 16)
		go func() {
			defer close(events)
			for {
				event, err := w.Next(context.Background())
				if err != nil {
					return
				}
				events <- event
			}
		}()
	})

	AfterEach(func() {
		Expect(w.Close()).To(Succeed())
		Eventually(events).Should(BeClosed())
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	It("should report create, write and delete of a file", func() {
		path := filepath.Join(tmpDir, "a.log")

		Expect(os.WriteFile(path, nil, 0o644)).To(Succeed())
		Eventually(events, time.Second).Should(Receive(Equal(types.Create(path))))

		Expect(os.WriteFile(path, []byte("line\n"), 0o644)).To(Succeed())
		Eventually(events, time.Second).Should(Receive(Equal(types.Write(path))))

		Expect(os.Remove(path)).To(Succeed())
		Eventually(events, time.Second).Should(Receive(Equal(types.Delete(path))))
	})

	It("should not report an excluded file", func() {
		Expect(os.WriteFile(filepath.Join(tmpDir, "b.tmp"), nil, 0o644)).To(Succeed())
		Consistently(events, 200*time.Millisecond).ShouldNot(Receive())
	})
})
