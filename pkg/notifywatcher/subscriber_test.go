// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher_test

import (
	"context"
	"os"
	"path/filepath"

	"github.com/black-desk/fswatch/internal/tests/logger"
	. "github.com/black-desk/fswatch/pkg/notifywatcher"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Subscribers", func() {
	var (
		tmpDir string
		cancel context.CancelFunc
		out    chan Record
		done   chan error
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "fswatch-subscriber-*")
		Expect(err).To(Succeed())

		out = make(chan Record, 64)
		done = make(chan error, 1)
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(Receive(BeNil()))
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	hasFlag := func(path string, flag Flag) func() bool {
		return func() bool {
			for {
				select {
				case record := <-out:
					if record.Path == path && record.Flags.Has(flag) {
						return true
					}
				default:
					return false
				}
			}
		}
	}

	DescribeTable("report changes below a root",
		func(newSubscriber func() Subscriber) {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			subscriber := newSubscriber()
			go func() {
				done <- subscriber.Subscribe(ctx, []Root{{Path: tmpDir, Recursive: true}}, out)
			}()

			path := filepath.Join(tmpDir, "sub", "a.log")
			Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())

			// The subscription starts asynchronously,
			// keep touching the file until it is seen.
			Eventually(func() bool {
				_ = os.WriteFile(path, []byte("x"), 0o644)
				return hasFlag(path, FlagCreated|FlagModified)()
			}).Should(BeTrue())

			Expect(os.Remove(path)).To(Succeed())
			Eventually(hasFlag(path, FlagRemoved)).Should(BeTrue())
		},
		Entry("with notify", func() Subscriber {
			log, _ := logger.ProvideLogger()
			return NewNotifySubscriber(log, 0)
		}),
		Entry("with fsnotify", func() Subscriber {
			log, _ := logger.ProvideLogger()
			return NewFSNotifySubscriber(log)
		}),
	)
})
