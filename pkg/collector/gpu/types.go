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

// Memory is the framebuffer memory of a device in bytes.
type Memory struct {
	Used  uint64
	Total uint64
}

// ProcessInfo is a compute process as reported by the telemetry library.
// UsedMemory is nil when the driver cannot account per-process memory
// (for example on Windows WDDM or inside some containers).
type ProcessInfo struct {
	PID        uint32
	UsedMemory *uint64
}

// Library is the handle to the GPU management library. One handle is opened
// per run.
type Library interface {
	Init() error
	Shutdown() error
	DeviceCount() (int, error)
	DeviceByIndex(index int) (Device, error)
	DriverVersion() (string, error)
}

// Device exposes the per-device queries used by the status table. Every call
// may fail independently, for example when a metric is not supported by the
// board.
type Device interface {
	Name() (string, error)
	MemoryInfo() (Memory, error)
	ComputeProcesses() ([]ProcessInfo, error)
	// Temperature returns the GPU core sensor reading in °C.
	Temperature() (uint32, error)
	// Utilization returns the GPU utilization rate in percent.
	Utilization() (uint32, error)
	FanSpeed(fan int) (uint32, error)
	EncoderUtilization() (uint32, error)
	DecoderUtilization() (uint32, error)
	// PowerUsage returns the current draw in milliwatts.
	PowerUsage() (uint32, error)
	// PowerLimit returns the power management limit in milliwatts.
	PowerLimit() (uint32, error)
}

// DeviceSnapshot is the telemetry of one device at collection time.
type DeviceSnapshot struct {
	Index       int           `json:"index" yaml:"index"`
	Name        string        `json:"name" yaml:"name"`
	Temperature uint32        `json:"temperatureCelsius" yaml:"temperatureCelsius"`
	Utilization uint32        `json:"utilizationPercent" yaml:"utilizationPercent"`
	MemoryUsed  uint64        `json:"memoryUsedBytes" yaml:"memoryUsedBytes"`
	MemoryTotal uint64        `json:"memoryTotalBytes" yaml:"memoryTotalBytes"`
	PowerUsage  uint32        `json:"powerUsageMilliwatts" yaml:"powerUsageMilliwatts"`
	PowerLimit  uint32        `json:"powerLimitMilliwatts" yaml:"powerLimitMilliwatts"`
	FanSpeed    *uint32       `json:"fanSpeedPercent,omitempty" yaml:"fanSpeedPercent,omitempty"`
	Encoder     *uint32       `json:"encoderUtilizationPercent,omitempty" yaml:"encoderUtilizationPercent,omitempty"`
	Decoder     *uint32       `json:"decoderUtilizationPercent,omitempty" yaml:"decoderUtilizationPercent,omitempty"`
	Processes   []ProcessInfo `json:"-" yaml:"-"`
}
