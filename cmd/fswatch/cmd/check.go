// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fswatch/internal/consts"
	"github.com/spf13/cobra"
)

var checkFlags struct {
	EnableLogger bool
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check system requirements",
	Long:  `Check configuration and the filesystem notification backend.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		err = checkCmdRun()
		return
	},
}

func checkCmdRun() (err error) {
	err = checkConfigCmdRun()
	if err != nil {
		return
	}

	err = checkBackendCmdRun()
	if err != nil {
		return
	}

	return
}

func init() {
	checkCmd.PersistentFlags().BoolVarP(
		&checkFlags.EnableLogger,
		"enable-logger", "l", false,
		"print logs while checking",
	)

	rootCmd.AddCommand(checkCmd)
}
