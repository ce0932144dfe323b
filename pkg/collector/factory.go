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

package collector

import (
	"context"

	"github.com/NVIDIA/gpustat/pkg/collector/gpu"
	"github.com/NVIDIA/gpustat/pkg/collector/process"
)

// Factory creates the collaborators of a status run.
// This interface enables dependency injection for testing.
type Factory interface {
	// CreateGPULibrary returns an uninitialized telemetry library handle.
	CreateGPULibrary() gpu.Library
	// CreateGPUCollector returns a device collector for the given options.
	CreateGPUCollector(opts gpu.Options) *gpu.Collector
	// CreateProcessSource reads the process table snapshot.
	CreateProcessSource(ctx context.Context) (process.Source, error)
}

// DefaultFactory creates collaborators with production dependencies.
type DefaultFactory struct {
	// ProcessSnapshot reads the process table. Defaults to process.Snapshot.
	ProcessSnapshot func(ctx context.Context) (process.Table, error)
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithProcessSnapshot overrides how the process table is read.
func WithProcessSnapshot(fn func(ctx context.Context) (process.Table, error)) Option {
	return func(f *DefaultFactory) {
		f.ProcessSnapshot = fn
	}
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		ProcessSnapshot: process.Snapshot,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateGPULibrary creates an NVML-backed library.
func (f *DefaultFactory) CreateGPULibrary() gpu.Library {
	return gpu.NewNVML()
}

// CreateGPUCollector creates a device collector.
func (f *DefaultFactory) CreateGPUCollector(opts gpu.Options) *gpu.Collector {
	return gpu.NewCollector(opts)
}

// CreateProcessSource takes the process table snapshot.
func (f *DefaultFactory) CreateProcessSource(ctx context.Context) (process.Source, error) {
	table, err := f.ProcessSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return table, nil
}
