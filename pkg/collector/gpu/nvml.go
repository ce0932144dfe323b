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
	"fmt"
	"math"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// valueNotAvailable is NVML_VALUE_NOT_AVAILABLE for unsigned long long fields.
const valueNotAvailable = math.MaxUint64

// NVML is the Library backed by the NVIDIA Management Library.
type NVML struct{}

// NewNVML returns an NVML-backed Library. Init must be called before use.
func NewNVML() *NVML {
	return &NVML{}
}

// nvmlError converts an NVML return code into an error, or nil on success.
func nvmlError(op string, ret nvml.Return) error {
	if ret == nvml.SUCCESS {
		return nil
	}
	return fmt.Errorf("%s: %s", op, nvml.ErrorString(ret))
}

// Init loads libnvidia-ml and initializes NVML.
func (n *NVML) Init() error {
	return nvmlError("nvmlInit", nvml.Init())
}

// Shutdown releases the NVML handle.
func (n *NVML) Shutdown() error {
	return nvmlError("nvmlShutdown", nvml.Shutdown())
}

// DeviceCount returns the number of devices visible to NVML.
func (n *NVML) DeviceCount() (int, error) {
	count, ret := nvml.DeviceGetCount()
	return count, nvmlError("nvmlDeviceGetCount", ret)
}

// DeviceByIndex returns the device at the given enumeration index.
func (n *NVML) DeviceByIndex(index int) (Device, error) {
	handle, ret := nvml.DeviceGetHandleByIndex(index)
	if err := nvmlError("nvmlDeviceGetHandleByIndex", ret); err != nil {
		return nil, err
	}
	return &nvmlDevice{handle: handle}, nil
}

// DriverVersion returns the system driver version string.
func (n *NVML) DriverVersion() (string, error) {
	v, ret := nvml.SystemGetDriverVersion()
	return v, nvmlError("nvmlSystemGetDriverVersion", ret)
}

type nvmlDevice struct {
	handle nvml.Device
}

func (d *nvmlDevice) Name() (string, error) {
	name, ret := d.handle.GetName()
	return name, nvmlError("nvmlDeviceGetName", ret)
}

func (d *nvmlDevice) MemoryInfo() (Memory, error) {
	mem, ret := d.handle.GetMemoryInfo()
	if err := nvmlError("nvmlDeviceGetMemoryInfo", ret); err != nil {
		return Memory{}, err
	}
	return Memory{Used: mem.Used, Total: mem.Total}, nil
}

func (d *nvmlDevice) ComputeProcesses() ([]ProcessInfo, error) {
	procs, ret := d.handle.GetComputeRunningProcesses()
	if err := nvmlError("nvmlDeviceGetComputeRunningProcesses", ret); err != nil {
		return nil, err
	}

	res := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		info := ProcessInfo{PID: p.Pid}
		if p.UsedGpuMemory != valueNotAvailable {
			used := p.UsedGpuMemory
			info.UsedMemory = &used
		}
		res = append(res, info)
	}
	return res, nil
}

func (d *nvmlDevice) Temperature() (uint32, error) {
	t, ret := d.handle.GetTemperature(nvml.TEMPERATURE_GPU)
	return t, nvmlError("nvmlDeviceGetTemperature", ret)
}

func (d *nvmlDevice) Utilization() (uint32, error) {
	u, ret := d.handle.GetUtilizationRates()
	return u.Gpu, nvmlError("nvmlDeviceGetUtilizationRates", ret)
}

func (d *nvmlDevice) FanSpeed(fan int) (uint32, error) {
	s, ret := d.handle.GetFanSpeed_v2(fan)
	return s, nvmlError("nvmlDeviceGetFanSpeed_v2", ret)
}

func (d *nvmlDevice) EncoderUtilization() (uint32, error) {
	u, _, ret := d.handle.GetEncoderUtilization()
	return u, nvmlError("nvmlDeviceGetEncoderUtilization", ret)
}

func (d *nvmlDevice) DecoderUtilization() (uint32, error) {
	u, _, ret := d.handle.GetDecoderUtilization()
	return u, nvmlError("nvmlDeviceGetDecoderUtilization", ret)
}

func (d *nvmlDevice) PowerUsage() (uint32, error) {
	p, ret := d.handle.GetPowerUsage()
	return p, nvmlError("nvmlDeviceGetPowerUsage", ret)
}

func (d *nvmlDevice) PowerLimit() (uint32, error) {
	p, ret := d.handle.GetPowerManagementLimit()
	return p, nvmlError("nvmlDeviceGetPowerManagementLimit", ret)
}
