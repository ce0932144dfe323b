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

// Package collector wires the data sources of a status run.
//
// # Overview
//
// A run needs two collaborators: the GPU telemetry library (package gpu) and
// a snapshot of the OS process table (package process). The Factory interface
// creates both so that the snapshotter can be tested without a GPU or a /proc
// filesystem.
//
// # Factory Pattern
//
//	type Factory interface {
//	    CreateGPULibrary() gpu.Library
//	    CreateGPUCollector(opts gpu.Options) *gpu.Collector
//	    CreateProcessSource(ctx context.Context) (process.Source, error)
//	}
//
// The DefaultFactory provides the production implementations:
//
//	factory := collector.NewDefaultFactory()
//	lib := factory.CreateGPULibrary() // NVML
//	procs, err := factory.CreateProcessSource(ctx) // gopsutil snapshot
//
// # Available Collectors
//
// GPU (gpu): per-device telemetry through NVML:
//   - name, temperature, utilization
//   - memory used/total, power usage/limit
//   - optional fan speed and encoder/decoder utilization
//   - compute processes with used GPU memory
//
// Process (process): process table snapshot and owner resolution:
//   - command name and argument vector per pid
//   - real uid resolved to a user name
package collector
