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

// Package defaults provides centralized constants for gpustat.
//
// The emphasis thresholds are fixed: they only decide whether a table cell is
// rendered bold and have no other effect. They are intentionally not exposed
// as flags.
//
// # Thresholds
//
//   - Temperature: bold above 50°C
//   - Utilization: bold above 30%
//   - Fan speed: bold above 50%
//   - Encoder/decoder: bold above 30% each
//   - Power and memory: bold when the used/limit ratio is above 0.5
//
// # Usage
//
//	import "github.com/NVIDIA/gpustat/pkg/defaults"
//
//	bold := temp > defaults.TemperatureThreshold
package defaults
