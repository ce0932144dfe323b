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

package defaults

// Emphasis thresholds. A metric is rendered bold only when it is strictly
// greater than its threshold.
const (
	// TemperatureThreshold is the GPU core temperature in degrees Celsius.
	TemperatureThreshold uint32 = 50

	// UtilizationThreshold is the GPU utilization percentage.
	UtilizationThreshold uint32 = 30

	// FanSpeedThreshold is the fan speed percentage of fan 0.
	FanSpeedThreshold uint32 = 50

	// CodecThreshold applies to encoder and decoder utilization separately.
	CodecThreshold uint32 = 30

	// PowerRatioThreshold is power usage divided by the power management limit.
	PowerRatioThreshold = 0.5

	// MemoryRatioThreshold is used memory divided by total memory.
	MemoryRatioThreshold = 0.5
)

// Unit conversions used by the status table.
const (
	// MegabyteShift converts bytes to megabytes by right shift (1 MB = 1<<20 bytes).
	MegabyteShift = 20

	// MilliwattsPerWatt converts NVML power readings to watts by integer division.
	MilliwattsPerWatt = 1000
)

// TimestampLayout is the local time layout of the report header line.
const TimestampLayout = "2006-01-02 15:04:05"
