/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	apperrors "github.com/NVIDIA/gpustat/pkg/errors"
	"github.com/NVIDIA/gpustat/pkg/logging"
	"github.com/NVIDIA/gpustat/pkg/report"
	"github.com/NVIDIA/gpustat/pkg/serializer"
)

const (
	flagColor          = "color"
	flagNoColor        = "no-color"
	flagShowCmd        = "show-cmd"
	flagShowFullCmd    = "show-full-cmd"
	flagShowPID        = "show-pid"
	flagShowFan        = "show-fan"
	flagShowCodec      = "show-codec"
	flagShowAll        = "show-all"
	flagFormat         = "format"
	flagOutput         = "output"
	flagTextfile       = "textfile"
	flagSkipUnresolved = "skip-unresolved"
	flagLogLevel       = "log-level"
)

// Flags are built per command because urfave flags keep their parsed value.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  flagColor,
			Usage: "Force colored output (even when stdout is not a tty)",
		},
		&cli.BoolFlag{
			Name:  flagNoColor,
			Usage: "Suppress colored output",
		},
		&cli.BoolFlag{
			Name:    flagShowCmd,
			Aliases: []string{"c"},
			Usage:   "Display the process name",
		},
		&cli.BoolFlag{
			Name:    flagShowFullCmd,
			Aliases: []string{"f"},
			Usage:   "Display the full command line of the process",
		},
		&cli.BoolFlag{
			Name:    flagShowPID,
			Aliases: []string{"p"},
			Usage:   "Display PID of the process",
		},
		&cli.BoolFlag{
			Name:    flagShowFan,
			Aliases: []string{"F"},
			Usage:   "Display GPU fan speed",
		},
		&cli.BoolFlag{
			Name:    flagShowCodec,
			Aliases: []string{"e"},
			Usage:   "Display encoder and decoder utilization",
		},
		&cli.BoolFlag{
			Name:    flagShowAll,
			Aliases: []string{"a"},
			Usage:   "Display all gpu properties above",
		},
		formatFlag(),
		outputFlag(),
		&cli.StringFlag{
			Name:  flagTextfile,
			Usage: "Also write the status as Prometheus metrics to this file (node_exporter textfile collector)",
		},
		&cli.BoolFlag{
			Name:  flagSkipUnresolved,
			Usage: "Show '?' for GPU processes whose pid or user cannot be resolved instead of failing",
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvVarLogLevel),
		},
	}
}

// runConfig is the parsed command line of a status run.
type runConfig struct {
	report   report.Options
	color    report.ColorMode
	format   serializer.Format
	output   string
	textfile string
	lenient  bool
}

func parseRunConfig(cmd *cli.Command) (*runConfig, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}

	return &runConfig{
		report: report.Options{
			ShowCmd:     cmd.Bool(flagShowCmd),
			ShowFullCmd: cmd.Bool(flagShowFullCmd),
			ShowPID:     cmd.Bool(flagShowPID),
			ShowFan:     cmd.Bool(flagShowFan),
			ShowCodec:   cmd.Bool(flagShowCodec),
			ShowAll:     cmd.Bool(flagShowAll),
		}.Resolved(),
		color:    report.ResolveColorMode(cmd.Bool(flagColor), cmd.Bool(flagNoColor)),
		format:   format,
		output:   cmd.String(flagOutput),
		textfile: cmd.String(flagTextfile),
		lenient:  cmd.Bool(flagSkipUnresolved),
	}, nil
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String(flagFormat))))
	if outFormat.IsUnknown() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", cmd.String(flagFormat)),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return outFormat, nil
}
