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


package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NVIDIA/gpustat/pkg/errors"
	"github.com/NVIDIA/gpustat/pkg/snapshotter"
)

func testReport(devices ...snapshotter.DeviceStatus) *snapshotter.Report {
	rep := snapshotter.NewReport()
	rep.Hostname = "gpu-node-01"
	rep.Timestamp = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	rep.DriverVersion = "550.54.15"
	rep.Devices = append(rep.Devices, devices...)
	return rep
}

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		force    bool
		suppress bool
		want     ColorMode
	}{
		{false, false, ColorAuto},
		{true, false, ColorAlways},
		{false, true, ColorNever},
		{true, true, ColorNever},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveColorMode(tt.force, tt.suppress))
		})
	}
}

func TestRenderer_HeaderLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{}, ColorNever, WithLocation(time.UTC))

	require.NoError(t, r.RenderTable(&buf, testReport()))
	assert.Equal(t, "gpu-node-01\t2025-03-14 09:26:53\t550.54.15\n", buf.String())
}

func TestRenderer_HeaderLineLocalZone(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("UTC+2", 2*60*60)
	r := NewRenderer(Options{}, ColorNever, WithLocation(loc))

	require.NoError(t, r.WriteHeaderLine(&buf, testReport()))
	assert.Contains(t, buf.String(), "2025-03-14 11:26:53")
}

func TestRenderer_NoColor(t *testing.T) {
	hot := testStatus()
	hot.Temperature = 90

	var buf bytes.Buffer
	r := NewRenderer(Options{ShowCmd: true}, ColorNever, WithLocation(time.UTC))
	require.NoError(t, r.RenderTable(&buf, testReport(testStatus(), hot)))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "[0]")
	assert.Contains(t, lines[1], "alice:train.py(2048M)")
	assert.Contains(t, lines[2], "90°C")
	assert.Contains(t, lines[1], "|")
}

func TestRenderer_ForcedColor(t *testing.T) {
	hot := testStatus()
	hot.Temperature = 61

	var buf bytes.Buffer
	r := NewRenderer(Options{}, ColorAlways, WithLocation(time.UTC))
	require.NoError(t, r.RenderTable(&buf, testReport(hot)))

	out := buf.String()
	assert.Contains(t, out, "\x1b[91;1m61°C")
	assert.Contains(t, out, "\x1b[92m10 %")
}

func TestRenderer_ZeroDevices(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{}, ColorAlways, WithLocation(time.UTC))

	require.NoError(t, r.RenderTable(&buf, testReport()))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.True(t, strings.HasPrefix(buf.String(), "gpu-node-01\t"))
}

func TestRenderer_AlignedColumns(t *testing.T) {
	short := testStatus()
	long := testStatus()
	long.Index = 1
	long.Name = "NVIDIA GeForce RTX 4090 Laptop GPU"

	var buf bytes.Buffer
	r := NewRenderer(Options{}, ColorNever, WithLocation(time.UTC))
	require.NoError(t, r.RenderTable(&buf, testReport(short, long)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Index(lines[1], "40°C"), strings.Index(lines[2], "40°C"))
}

func TestRenderer_ReportValue(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{}, ColorNever)

	require.NoError(t, r.RenderTable(&buf, *testReport(testStatus())))
	assert.Contains(t, buf.String(), "NVIDIA A100-SXM4-80GB")
}

func TestRenderer_UnsupportedData(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{}, ColorNever)

	err := r.RenderTable(&buf, map[string]string{"a": "b"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.CodeOf(err))
	assert.Zero(t, buf.Len())
}
