// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fswatch/internal/consts"
	"github.com/black-desk/fswatch/pkg/fswatch"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
)

// checkBackendCmd represents the backend command
var checkBackendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Check notification backend",
	Long:  `Check the configured backend can be created on this system.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		err = checkBackendCmdRun()
		return
	},
}

func checkBackendCmdRun() (err error) {
	defer Wrap(&err, "Failed to check backend.")

	log := checkLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return
	}

	w, err := fswatch.NewWatcher(cfg, log)
	if err != nil {
		return
	}

	err = w.Close()
	if err != nil {
		return
	}

	log.Infow("Backend is available.",
		"backend", cfg.Backend,
	)

	return
}

func init() {
	checkCmd.AddCommand(checkBackendCmd)
}
