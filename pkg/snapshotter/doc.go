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


// Package snapshotter produces the GPU status report of the current host.
//
// NodeSnapshotter opens the NVML library once, takes a single snapshot of the
// OS process table and then visits every device in enumeration order:
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version:    "v1.0.0",
//	    Options:    gpu.Options{FanSpeed: true},
//	    Serializer: serializer.NewStdoutWriter(serializer.FormatJSON),
//	}
//	if err := s.Measure(ctx); err != nil {
//	    return err
//	}
//
// Collection is all-or-nothing. The first failing device query, process
// lookup or hostname read aborts the run, rows already built are discarded
// and the serializer is never called. Setting Lenient replaces unresolvable
// process owners with a placeholder instead.
//
// When TextfilePath is set the report is also written in the Prometheus text
// exposition format for the node_exporter textfile collector.
package snapshotter
