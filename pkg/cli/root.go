/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/gpustat/pkg/collector"
	"github.com/NVIDIA/gpustat/pkg/logging"
)

const (
	name           = "gpustat"
	versionDefault = "dev"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitCanceled = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// runFunc executes one status run with the parsed configuration.
type runFunc func(ctx context.Context, cfg *runConfig) error

// Execute runs the root command with the process arguments and exits with
// the matching code. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	root := newRootCmd(func(ctx context.Context, cfg *runConfig) error {
		return runStatus(ctx, cfg, collector.NewDefaultFactory())
	})

	err := root.Run(ctx, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitCanceled
	default:
		return exitFailure
	}
}

func newRootCmd(run runFunc) *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Query and display the status of NVIDIA GPUs",
		Version: version,
		Description: fmt.Sprintf(`Prints one line with the hostname, local time and driver version, followed
by one table row per GPU: index, name, temperature, utilization, power,
memory and the users of the compute processes running on it.

Values above their threshold are shown in bold:
  temperature > 50°C, utilization > 30 %%, fan > 50 %%, encoder/decoder > 30 %%,
  power draw > 50 %% of the limit, memory used > 50 %% of total.

Commit: %s
Built:  %s`, commit, date),
		UseShortOptionHandling: true,
		Flags:                  rootFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			// configure slog once flags are parsed so --log-level takes effect
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String(flagLogLevel))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("unexpected arguments: %v", cmd.Args().Slice())
			}

			cfg, err := parseRunConfig(cmd)
			if err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}
}
