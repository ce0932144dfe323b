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

// Package gpu collects per-device GPU telemetry through NVML.
//
// # Collected Data
//
// For every device the collector returns a DeviceSnapshot:
//   - name: device product name
//   - temperature: GPU core sensor in °C
//   - utilization: GPU utilization in percent
//   - memory: used and total framebuffer bytes
//   - power: current draw and management limit in milliwatts
//   - fan speed (optional): fan 0 in percent
//   - encoder/decoder utilization (optional): percent each
//   - compute processes: pid and used GPU memory
//
// # Usage
//
//	lib := gpu.NewNVML()
//	if err := lib.Init(); err != nil {
//	    return err
//	}
//	defer lib.Shutdown()
//
//	dev, err := lib.DeviceByIndex(0)
//	if err != nil {
//	    return err
//	}
//	snap, err := gpu.NewCollector(gpu.Options{FanSpeed: true}).CollectDevice(ctx, 0, dev)
//
// # NVML Dependency
//
// The NVML implementation loads libnvidia-ml.so at Init through
// github.com/NVIDIA/go-nvml. When the library or the driver is missing, Init
// returns an error and the run aborts.
//
// # Error Handling
//
// Every query is fatal on failure. Errors are StructuredErrors with code
// TELEMETRY_ERROR and carry the device index and metric name in their context.
// There is no partial-result mode.
//
// # Testing
//
// Library and Device are interfaces so that tests can supply fakes without a
// GPU. Unsupported metrics are modelled by a fake returning an error.
package gpu
