// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/NVIDIA/gpustat/pkg/collector"
	"github.com/NVIDIA/gpustat/pkg/collector/gpu"
	"github.com/NVIDIA/gpustat/pkg/collector/process"
	apperrors "github.com/NVIDIA/gpustat/pkg/errors"
	"github.com/NVIDIA/gpustat/pkg/header"
	"github.com/NVIDIA/gpustat/pkg/serializer"
)

// NodeSnapshotter collects the GPU status of the current host. Devices are
// visited one after another; the first failure aborts the run and nothing is
// written.
type NodeSnapshotter struct {
	// Version is the tool version recorded in the report header.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Options selects the optional device metrics.
	Options gpu.Options

	// Lenient substitutes a placeholder for processes whose pid or uid cannot
	// be resolved instead of failing the run.
	Lenient bool

	// UserLookup overrides the user database lookup. If nil, process.LookupUser is used.
	UserLookup process.UserLookup

	// Hostname overrides os.Hostname.
	Hostname func() (string, error)

	// Now overrides time.Now.
	Now func() time.Time

	// Serializer writes the report. If nil, a stdout JSON serializer is used.
	Serializer serializer.Serializer

	// TextfilePath, when set, receives the report as Prometheus text-format metrics.
	TextfilePath string
}

// Measure collects the report and hands it to the serializer. No output is
// produced unless every device was collected.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	rep, err := n.Collect(ctx)
	if err != nil {
		return err
	}

	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := n.Serializer.Serialize(ctx, rep); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	if n.TextfilePath != "" {
		if err := WriteTextfile(n.TextfilePath, rep); err != nil {
			return err
		}
	}

	return nil
}

// Collect opens the telemetry library, reads the process table once and
// builds one DeviceStatus per device in enumeration order.
func (n *NodeSnapshotter) Collect(ctx context.Context) (*Report, error) {
	if n.Factory == nil {
		n.Factory = collector.NewDefaultFactory()
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	start := now()

	lib := n.Factory.CreateGPULibrary()
	if err := lib.Init(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTelemetry, "failed to load nvml library", err)
	}
	defer func() {
		if err := lib.Shutdown(); err != nil {
			slog.Warn("failed to shut down nvml", slog.String("error", err.Error()))
		}
	}()

	count, err := lib.DeviceCount()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTelemetry, "failed to get device count", err)
	}
	slog.Debug("nvml initialized", slog.Int("devices", count))

	source, err := n.Factory.CreateProcessSource(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeSystem, "failed to read process table", err)
	}

	opts := []process.Option{process.WithLenient(n.Lenient)}
	if n.UserLookup != nil {
		opts = append(opts, process.WithUserLookup(n.UserLookup))
	}
	resolver := process.NewResolver(source, opts...)
	col := n.Factory.CreateGPUCollector(n.Options)

	rep := NewReport()
	rep.Devices = make([]DeviceStatus, 0, count)

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, err := collectDevice(ctx, lib, col, resolver, i)
		if err != nil {
			slog.Error("failed to collect device", slog.Int("index", i), slog.String("error", err.Error()))
			return nil, err
		}
		rep.Devices = append(rep.Devices, *status)
	}

	driver, err := lib.DriverVersion()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTelemetry, "failed to get driver version", err)
	}

	hostname, err := n.hostname()
	if err != nil {
		return nil, err
	}

	at := now()
	rep.Init(header.KindStatus, APIVersion, n.Version, at)
	rep.SetMetadata(header.MetadataRunID, uuid.New().String())
	rep.SetMetadata(header.MetadataHostname, hostname)
	rep.SetMetadata(header.MetadataDriver, driver)
	rep.Hostname = hostname
	rep.Timestamp = at
	rep.DriverVersion = driver
	rep.Duration = at.Sub(start)

	slog.Debug("status collection complete",
		slog.Int("devices", len(rep.Devices)),
		slog.Duration("duration", rep.Duration))

	return rep, nil
}

func collectDevice(ctx context.Context, lib gpu.Library, col *gpu.Collector, resolver *process.Resolver, index int) (*DeviceStatus, error) {
	dev, err := lib.DeviceByIndex(index)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeTelemetry,
			"failed to get device handle", err, map[string]any{"device": index})
	}

	snap, err := col.CollectDevice(ctx, index, dev)
	if err != nil {
		return nil, err
	}

	status := &DeviceStatus{
		DeviceSnapshot: *snap,
		Processes:      make([]ProcessStatus, 0, len(snap.Processes)),
	}

	for _, p := range snap.Processes {
		owner, err := resolver.Resolve(p.PID)
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeSystem,
				"failed to attribute gpu process", err,
				map[string]any{"device": index, "pid": p.PID})
		}
		status.Processes = append(status.Processes, ProcessStatus{
			PID:        p.PID,
			UsedMemory: p.UsedMemory,
			User:       owner.User,
			Name:       owner.Name,
			Cmdline:    owner.Cmdline,
		})
	}

	return status, nil
}

func (n *NodeSnapshotter) hostname() (string, error) {
	get := os.Hostname
	if n.Hostname != nil {
		get = n.Hostname
	}

	name, err := get()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeIO, "failed to get hostname", err)
	}
	if !utf8.ValidString(name) {
		return "", apperrors.NewWithContext(apperrors.ErrCodeEncoding,
			"hostname is not valid UTF-8", map[string]any{"hostname": fmt.Sprintf("%q", name)})
	}
	return name, nil
}
