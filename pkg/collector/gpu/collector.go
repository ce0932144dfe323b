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

package gpu

import (
	"context"
	"log/slog"

	apperrors "github.com/NVIDIA/gpustat/pkg/errors"
)

// Options selects the optional per-device queries. Optional metrics are only
// queried when they will be displayed, so a board without a fan does not fail
// a run that never asked for fan speed.
type Options struct {
	FanSpeed bool
	Codec    bool
}

// Collector reads one DeviceSnapshot per device.
type Collector struct {
	Options Options
}

// NewCollector returns a Collector for the given options.
func NewCollector(opts Options) *Collector {
	return &Collector{Options: opts}
}

// CollectDevice queries every metric of device in a fixed order and stops at
// the first failure.
func (c *Collector) CollectDevice(ctx context.Context, index int, device Device) (*DeviceSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("collecting device", slog.Int("index", index))

	snap := &DeviceSnapshot{Index: index}
	var err error

	if snap.Name, err = device.Name(); err != nil {
		return nil, queryError(index, "name", err)
	}

	mem, err := device.MemoryInfo()
	if err != nil {
		return nil, queryError(index, "memory_info", err)
	}
	snap.MemoryUsed, snap.MemoryTotal = mem.Used, mem.Total

	if snap.Processes, err = device.ComputeProcesses(); err != nil {
		return nil, queryError(index, "compute_processes", err)
	}

	if snap.Temperature, err = device.Temperature(); err != nil {
		return nil, queryError(index, "temperature", err)
	}

	if snap.Utilization, err = device.Utilization(); err != nil {
		return nil, queryError(index, "utilization", err)
	}

	if c.Options.FanSpeed {
		fan, fanErr := device.FanSpeed(0)
		if fanErr != nil {
			return nil, queryError(index, "fan_speed", fanErr)
		}
		snap.FanSpeed = &fan
	}

	if c.Options.Codec {
		enc, encErr := device.EncoderUtilization()
		if encErr != nil {
			return nil, queryError(index, "encoder_utilization", encErr)
		}
		dec, decErr := device.DecoderUtilization()
		if decErr != nil {
			return nil, queryError(index, "decoder_utilization", decErr)
		}
		snap.Encoder, snap.Decoder = &enc, &dec
	}

	if snap.PowerUsage, err = device.PowerUsage(); err != nil {
		return nil, queryError(index, "power_usage", err)
	}

	if snap.PowerLimit, err = device.PowerLimit(); err != nil {
		return nil, queryError(index, "power_limit", err)
	}

	slog.Debug("device collected",
		slog.Int("index", index),
		slog.String("name", snap.Name),
		slog.Int("processes", len(snap.Processes)))

	return snap, nil
}

func queryError(index int, metric string, err error) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeTelemetry,
		"failed to query device "+metric, err,
		map[string]any{
			"device": index,
			"metric": metric,
		})
}
