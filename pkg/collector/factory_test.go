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
	"errors"
	"testing"

	"github.com/NVIDIA/gpustat/pkg/collector/gpu"
	"github.com/NVIDIA/gpustat/pkg/collector/process"
)

func TestDefaultFactory_CreateGPULibrary(t *testing.T) {
	factory := NewDefaultFactory()

	lib := factory.CreateGPULibrary()
	if lib == nil {
		t.Fatal("Expected non-nil library")
	}
	if _, ok := lib.(*gpu.NVML); !ok {
		t.Errorf("Expected *gpu.NVML, got %T", lib)
	}
}

func TestDefaultFactory_CreateGPUCollector(t *testing.T) {
	factory := NewDefaultFactory()

	col := factory.CreateGPUCollector(gpu.Options{FanSpeed: true})
	if col == nil {
		t.Fatal("Expected non-nil collector")
	}
	if !col.Options.FanSpeed || col.Options.Codec {
		t.Errorf("Unexpected options: %+v", col.Options)
	}
}

func TestDefaultFactory_CreateProcessSource(t *testing.T) {
	table := process.Table{42: {PID: 42, Name: "cuda-app", UID: 1000}}
	factory := NewDefaultFactory(WithProcessSnapshot(func(context.Context) (process.Table, error) {
		return table, nil
	}))

	src, err := factory.CreateProcessSource(context.TODO())
	if err != nil {
		t.Fatalf("CreateProcessSource() error = %v", err)
	}

	info, ok := src.Lookup(42)
	if !ok || info.Name != "cuda-app" {
		t.Errorf("Lookup(42) = %+v, %v", info, ok)
	}
}

func TestDefaultFactory_CreateProcessSourceError(t *testing.T) {
	want := errors.New("proc not mounted")
	factory := NewDefaultFactory(WithProcessSnapshot(func(context.Context) (process.Table, error) {
		return nil, want
	}))

	src, err := factory.CreateProcessSource(context.TODO())
	if !errors.Is(err, want) {
		t.Errorf("Expected %v, got %v", want, err)
	}
	if src != nil {
		t.Errorf("Expected nil source, got %v", src)
	}
}
