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

// Package header provides the common header for serialized gpustat reports.
//
// JSON and YAML output start with Kubernetes-style identification fields so
// that downstream tooling can recognize and version the document:
//
//	{
//	  "kind": "GPUStatus",
//	  "apiVersion": "gpustat.nvidia.com/v1alpha1",
//	  "metadata": {
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v0.2.0",
//	    "runID": "0b6f7a0e-3c8e-4f53-a1a3-6f0d2f6c8b51"
//	  }
//	}
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindStatus, "gpustat.nvidia.com/v1alpha1", version, time.Now())
//	h.SetMetadata(header.MetadataHostname, hostname)
//
// Timestamps use RFC3339 in UTC. The table header line uses local time and is
// produced by the report package, not here.
package header
