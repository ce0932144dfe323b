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

package process

import (
	"context"
	"log/slog"

	gopsprocess "github.com/shirou/gopsutil/v3/process"

	apperrors "github.com/NVIDIA/gpustat/pkg/errors"
)

// Info is one entry of the process table snapshot.
type Info struct {
	PID     int32
	Name    string
	Cmdline []string
	UID     uint32
}

// Table is a point-in-time copy of the OS process table keyed by pid.
type Table map[int32]Info

// Lookup returns the snapshot entry for pid.
func (t Table) Lookup(pid int32) (Info, bool) {
	info, ok := t[pid]
	return info, ok
}

// Snapshot reads the whole process table once. Processes that exit while the
// table is being read, or whose status cannot be read, are left out.
func Snapshot(ctx context.Context) (Table, error) {
	procs, err := gopsprocess.ProcessesWithContext(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeSystem, "failed to list processes", err)
	}

	table := make(Table, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := readInfo(ctx, p)
		if err != nil {
			slog.Debug("skipping process", slog.Int("pid", int(p.Pid)), slog.String("error", err.Error()))
			continue
		}
		table[p.Pid] = info
	}

	slog.Debug("process table snapshot", slog.Int("processes", len(table)))
	return table, nil
}

func readInfo(ctx context.Context, p *gopsprocess.Process) (Info, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return Info{}, err
	}

	uids, err := p.UidsWithContext(ctx)
	if err != nil {
		return Info{}, err
	}
	if len(uids) == 0 {
		return Info{}, apperrors.New(apperrors.ErrCodeSystem, "process has no uid")
	}

	// kernel threads have an empty command line
	cmdline, err := p.CmdlineSliceWithContext(ctx)
	if err != nil {
		cmdline = nil
	}

	return Info{
		PID:     p.Pid,
		Name:    name,
		Cmdline: cmdline,
		UID:     uint32(uids[0]),
	}, nil
}
