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
	"time"

	"github.com/NVIDIA/gpustat/pkg/collector/gpu"
	"github.com/NVIDIA/gpustat/pkg/header"
)

// APIVersion is the apiVersion of serialized reports.
const APIVersion = "gpustat.nvidia.com/v1alpha1"

// Snapshotter defines the interface for producing a GPU status report.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// ProcessStatus is a compute process attributed to its owner.
type ProcessStatus struct {
	PID uint32 `json:"pid" yaml:"pid"`

	// UsedMemory is nil when the driver reports the value as unavailable.
	UsedMemory *uint64 `json:"usedMemoryBytes,omitempty" yaml:"usedMemoryBytes,omitempty"`

	User    string   `json:"user" yaml:"user"`
	Name    string   `json:"name" yaml:"name"`
	Cmdline []string `json:"cmdline,omitempty" yaml:"cmdline,omitempty"`
}

// DeviceStatus is one device with its attributed compute processes.
type DeviceStatus struct {
	gpu.DeviceSnapshot `json:",inline" yaml:",inline"`

	Processes []ProcessStatus `json:"processes" yaml:"processes"`
}

// Report is the result of one status run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Hostname      string         `json:"hostname" yaml:"hostname"`
	Timestamp     time.Time      `json:"timestamp" yaml:"timestamp"`
	DriverVersion string         `json:"driverVersion" yaml:"driverVersion"`
	Devices       []DeviceStatus `json:"devices" yaml:"devices"`

	// Duration is how long collection took.
	Duration time.Duration `json:"-" yaml:"-"`
}

// NewReport creates a Report with an initialized Devices slice.
func NewReport() *Report {
	return &Report{
		Devices: make([]DeviceStatus, 0),
	}
}
