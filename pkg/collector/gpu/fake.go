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
	"errors"
	"fmt"
)

// ErrFakeUnsupported is returned by FakeDevice for metrics listed in Fail.
var ErrFakeUnsupported = errors.New("not supported")

// FakeLibrary is an in-memory Library for tests.
type FakeLibrary struct {
	Devices    []*FakeDevice
	Driver     string
	InitErr    error
	DriverErr  error
	Opened     bool
	Closed     bool
	Requested  []int
	CountErr   error
	HandleErrs map[int]error
}

// Init implements Library.
func (f *FakeLibrary) Init() error {
	if f.InitErr != nil {
		return f.InitErr
	}
	f.Opened = true
	return nil
}

// Shutdown implements Library.
func (f *FakeLibrary) Shutdown() error {
	f.Closed = true
	return nil
}

// DeviceCount implements Library.
func (f *FakeLibrary) DeviceCount() (int, error) {
	if f.CountErr != nil {
		return 0, f.CountErr
	}
	return len(f.Devices), nil
}

// DeviceByIndex implements Library and records the requested index.
func (f *FakeLibrary) DeviceByIndex(index int) (Device, error) {
	f.Requested = append(f.Requested, index)
	if err := f.HandleErrs[index]; err != nil {
		return nil, err
	}
	if index < 0 || index >= len(f.Devices) {
		return nil, fmt.Errorf("invalid device index %d", index)
	}
	return f.Devices[index], nil
}

// DriverVersion implements Library.
func (f *FakeLibrary) DriverVersion() (string, error) {
	return f.Driver, f.DriverErr
}

// FakeDevice is an in-memory Device for tests. Metrics named in Fail return
// ErrFakeUnsupported. Calls records every query in order.
type FakeDevice struct {
	DeviceName string
	Memory     Memory
	Procs      []ProcessInfo
	Temp       uint32
	Util       uint32
	Fan        uint32
	Enc        uint32
	Dec        uint32
	Power      uint32
	Limit      uint32
	Fail       map[string]bool
	Calls      []string
}

func (f *FakeDevice) call(metric string) error {
	f.Calls = append(f.Calls, metric)
	if f.Fail[metric] {
		return fmt.Errorf("%s: %w", metric, ErrFakeUnsupported)
	}
	return nil
}

// Name implements Device.
func (f *FakeDevice) Name() (string, error) { return f.DeviceName, f.call("name") }

// MemoryInfo implements Device.
func (f *FakeDevice) MemoryInfo() (Memory, error) { return f.Memory, f.call("memory_info") }

// ComputeProcesses implements Device.
func (f *FakeDevice) ComputeProcesses() ([]ProcessInfo, error) {
	return f.Procs, f.call("compute_processes")
}

// Temperature implements Device.
func (f *FakeDevice) Temperature() (uint32, error) { return f.Temp, f.call("temperature") }

// Utilization implements Device.
func (f *FakeDevice) Utilization() (uint32, error) { return f.Util, f.call("utilization") }

// FanSpeed implements Device.
func (f *FakeDevice) FanSpeed(int) (uint32, error) { return f.Fan, f.call("fan_speed") }

// EncoderUtilization implements Device.
func (f *FakeDevice) EncoderUtilization() (uint32, error) {
	return f.Enc, f.call("encoder_utilization")
}

// DecoderUtilization implements Device.
func (f *FakeDevice) DecoderUtilization() (uint32, error) {
	return f.Dec, f.call("decoder_utilization")
}

// PowerUsage implements Device.
func (f *FakeDevice) PowerUsage() (uint32, error) { return f.Power, f.call("power_usage") }

// PowerLimit implements Device.
func (f *FakeDevice) PowerLimit() (uint32, error) { return f.Limit, f.call("power_limit") }
