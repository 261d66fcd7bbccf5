// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/black-desk/fswatch/internal/consts"
	"github.com/black-desk/fswatch/pkg/fswatch/config"
	"github.com/black-desk/fswatch/pkg/types"
	"github.com/black-desk/lib/go/logger"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flags struct {
	CfgPath string
}

var rootCmd = &cobra.Command{
	Use:   "fswatch",
	Short: "Watch files and directories for changes",
	Long: `Watch the configured files and directories
and print every change as a TYPE<TAB>PATH line.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf(
				"\n\n%w\n"+consts.CheckDocumentString,
				err,
			)

			return
		}()
		err = rootCmdRun(cmd.OutOrStdout())
		return
	},
}

func rootCmdRun(out io.Writer) (err error) {
	log := logger.Get("fswatch")

	var cfg *config.Config
	cfg, err = loadConfig(log)
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	f, err := injectedFSWatch(cfg, log)
	if err != nil {
		return
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

		sig := <-sigCh
		cancel(&ErrCancelBySignal{Signal: sig})
	}()

	var wg conc.WaitGroup
	wg.Go(func() {
		for event := range f.Events() {
			printEvent(out, event)
		}
	})

	err = f.Run(ctx)
	wg.Wait()
	if err == nil {
		return
	}

	log.Debugw(
		"FSWatch exited with error.",
		"error", err,
	)

	var cancelBySignal *ErrCancelBySignal
	if errors.As(err, &cancelBySignal) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		err = nil
		return
	}

	return
}

func printEvent(out io.Writer, event types.Event) {
	fmt.Fprintf(out, "%s\t%s\n", event.Type, event.Path)
}

func loadConfig(log *zap.SugaredLogger) (ret *config.Config, err error) {
	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == consts.FSWatchCfgPath {
		log.Errorw("Configuration file missing fallback to default config.")

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		log.Errorw("Failed to read configuration from file",
			"file", flags.CfgPath,
			"error", err)

		return
	}

	return config.Load(content, log)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cfgPath := os.Getenv("CONFIGURATION_DIRECTORY")
	if cfgPath == "" {
		cfgPath = consts.FSWatchCfgPath
	} else {
		cfgPath += "/config.yaml"
	}

	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", cfgPath,
		"the configure file to use",
	)
}
