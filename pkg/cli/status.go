/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/gpustat/pkg/collector"
	"github.com/NVIDIA/gpustat/pkg/report"
	"github.com/NVIDIA/gpustat/pkg/serializer"
	"github.com/NVIDIA/gpustat/pkg/snapshotter"
)

// runStatus collects the report with factory and writes it in the
// configured format. Nothing is written if collection fails.
func runStatus(ctx context.Context, cfg *runConfig, factory collector.Factory, opts ...func(*snapshotter.NodeSnapshotter)) error {
	renderer := report.NewRenderer(cfg.report, cfg.color)

	out := serializer.NewFileWriterOrStdout(cfg.format, cfg.output, serializer.WithTableRenderer(renderer))
	defer func() {
		if err := out.Close(); err != nil {
			slog.Warn("failed to close output", slog.String("error", err.Error()))
		}
	}()

	ns := &snapshotter.NodeSnapshotter{
		Version:      version,
		Factory:      factory,
		Options:      cfg.report.CollectorOptions(),
		Lenient:      cfg.lenient,
		Serializer:   out,
		TextfilePath: cfg.textfile,
	}
	for _, o := range opts {
		o(ns)
	}

	slog.Debug("collecting gpu status",
		slog.String("format", string(cfg.format)),
		slog.String("color", cfg.color.String()),
		slog.Bool("lenient", cfg.lenient))

	return ns.Measure(ctx)
}
