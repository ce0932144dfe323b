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

// Package process attributes GPU compute processes to OS users and commands.
//
// The OS process table is read once per run with Snapshot. GPU processes
// reported later are resolved against that snapshot, never against the live
// table:
//
//	table, err := process.Snapshot(ctx)
//	if err != nil {
//	    return err
//	}
//	owner, err := process.NewResolver(table).Resolve(pid)
//
// # Known race
//
// A GPU process can exit between the telemetry query and the snapshot lookup,
// or start after the snapshot was taken. By default such a pid is an error
// and the run aborts. WithLenient(true) substitutes Placeholder for the user
// and command and logs a warning instead.
package process
