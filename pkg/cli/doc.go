// Package cli implements the command-line interface of the gpustat tool.
//
// # Overview
//
// gpustat prints a one-line host header followed by one table row per NVIDIA
// GPU, with the users and commands of the compute processes running on each
// device. Metrics above a fixed threshold are shown in bold.
//
//	gpustat [-c] [-f] [-p] [-F] [-e] [-a] [--color|--no-color]
//
// # Flags
//
//	--color               Force colored output even when stdout is not a tty
//	--no-color            Suppress colored output (wins over --color)
//	--show-cmd, -c        Display the process name
//	--show-full-cmd, -f   Display the full command line of the process
//	--show-pid, -p        Display the PID of the process
//	--show-fan, -F        Display the speed of fan 0
//	--show-codec, -e      Display encoder and decoder utilization
//	--show-all, -a        Same as -F -e -f -p
//	--format, -t          Output format: table, json, yaml (default: table)
//	--output, -o          Output file path (default: stdout)
//	--textfile            Also write Prometheus metrics for node_exporter
//	--skip-unresolved     Show '?' for processes that cannot be attributed
//	--log-level           Log level: debug, info, warn, error (default: warn)
//	--help, -h            Show help
//	--version, -v         Show version information
//
// Short flags can be combined, for example -cp.
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//	NO_COLOR    Disable colors unless --color is given
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, telemetry or lookup failure)
//	2  Context canceled (SIGINT/SIGTERM)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/snapshotter - Status collection
//   - pkg/report - Table formatting
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/gpustat/pkg/cli.version=1.0.0'"
package cli
