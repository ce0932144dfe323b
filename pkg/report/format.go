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
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/NVIDIA/gpustat/pkg/collector/gpu"
	"github.com/NVIDIA/gpustat/pkg/defaults"
	"github.com/NVIDIA/gpustat/pkg/snapshotter"
)

// unavailable is shown for a process whose memory usage the driver cannot report.
const unavailable = "Unavailable"

// missing is shown for an optional metric that was not collected.
const missing = "-"

// Column colors.
const (
	colorIndex       = color.FgCyan
	colorName        = color.FgBlue
	colorTemperature = color.FgHiRed
	colorUtilization = color.FgHiGreen
	colorFan         = color.FgHiMagenta
	colorCodec       = color.FgHiCyan
	colorPower       = color.FgMagenta
	colorMemory      = color.FgHiYellow
	colorProcesses   = color.FgYellow
)

// Options selects the optional columns and the process cell layout.
type Options struct {
	ShowCmd     bool
	ShowFullCmd bool
	ShowPID     bool
	ShowFan     bool
	ShowCodec   bool

	// ShowAll implies ShowFan, ShowCodec, ShowFullCmd and ShowPID.
	ShowAll bool
}

// Resolved folds ShowAll into the individual options.
func (o Options) Resolved() Options {
	if o.ShowAll {
		o.ShowFan = true
		o.ShowCodec = true
		o.ShowFullCmd = true
		o.ShowPID = true
		o.ShowAll = false
	}
	return o
}

// CollectorOptions returns the optional device metrics these columns need.
func (o Options) CollectorOptions() gpu.Options {
	r := o.Resolved()
	return gpu.Options{
		FanSpeed: r.ShowFan,
		Codec:    r.ShowCodec,
	}
}

// ColumnCount is the number of cells every row has for these options.
func (o Options) ColumnCount() int {
	r := o.Resolved()
	n := 7
	if r.ShowFan {
		n++
	}
	if r.ShowCodec {
		n += 2
	}
	return n
}

// Cell is one styled table cell.
type Cell struct {
	Text  string
	Color color.Attribute
	Bold  bool
}

// Row is the cells of one device in column order.
type Row []Cell

// Texts returns the plain text of every cell.
func (r Row) Texts() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Text
	}
	return out
}

// BuildRow formats one device.
func BuildRow(d snapshotter.DeviceStatus, opts Options) Row {
	o := opts.Resolved()

	row := Row{
		{Text: fmt.Sprintf("[%d]", d.Index), Color: colorIndex},
		{Text: d.Name, Color: colorName},
		{
			Text:  fmt.Sprintf("%d°C", d.Temperature),
			Color: colorTemperature,
			Bold:  d.Temperature > defaults.TemperatureThreshold,
		},
		{
			Text:  fmt.Sprintf("%d %%", d.Utilization),
			Color: colorUtilization,
			Bold:  d.Utilization > defaults.UtilizationThreshold,
		},
	}

	if o.ShowFan {
		row = append(row, percentCell("F: ", d.FanSpeed, defaults.FanSpeedThreshold, colorFan))
	}

	if o.ShowCodec {
		row = append(row,
			percentCell("E: ", d.Encoder, defaults.CodecThreshold, colorCodec),
			percentCell("D: ", d.Decoder, defaults.CodecThreshold, colorCodec),
		)
	}

	row = append(row,
		Cell{
			Text: fmt.Sprintf("%d / %d W",
				d.PowerUsage/defaults.MilliwattsPerWatt, d.PowerLimit/defaults.MilliwattsPerWatt),
			Color: colorPower,
			Bold:  ratioAbove(float64(d.PowerUsage), float64(d.PowerLimit), defaults.PowerRatioThreshold),
		},
		Cell{
			Text: fmt.Sprintf("%d / %d MB",
				d.MemoryUsed>>defaults.MegabyteShift, d.MemoryTotal>>defaults.MegabyteShift),
			Color: colorMemory,
			Bold:  ratioAbove(float64(d.MemoryUsed), float64(d.MemoryTotal), defaults.MemoryRatioThreshold),
		},
		Cell{
			Text:  ProcessesText(d.Processes, o),
			Color: colorProcesses,
		},
	)

	return row
}

func percentCell(prefix string, value *uint32, threshold uint32, attr color.Attribute) Cell {
	if value == nil {
		return Cell{Text: prefix + missing + " %", Color: attr}
	}
	return Cell{
		Text:  fmt.Sprintf("%s%d %%", prefix, *value),
		Color: attr,
		Bold:  *value > threshold,
	}
}

// ratioAbove reports whether num/den is strictly above limit. A zero
// denominator is never above.
func ratioAbove(num, den, limit float64) bool {
	if den == 0 {
		return false
	}
	return num/den > limit
}

// ProcessesText joins the attribution of every process with commas.
func ProcessesText(procs []snapshotter.ProcessStatus, opts Options) string {
	o := opts.Resolved()
	parts := make([]string, 0, len(procs))
	for _, p := range procs {
		parts = append(parts, ProcessText(p, o))
	}
	return strings.Join(parts, ",")
}

// ProcessText formats one process as user[:cmd][/pid](NM).
func ProcessText(p snapshotter.ProcessStatus, opts Options) string {
	o := opts.Resolved()

	var b strings.Builder
	b.WriteString(p.User)

	switch {
	case o.ShowFullCmd:
		b.WriteByte(':')
		if len(p.Cmdline) > 0 {
			b.WriteString(strings.Join(p.Cmdline, " "))
		} else {
			// kernel threads and placeholders have no argv
			b.WriteString(p.Name)
		}
	case o.ShowCmd:
		b.WriteByte(':')
		b.WriteString(p.Name)
	}

	if o.ShowPID {
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(p.PID), 10))
	}

	b.WriteByte('(')
	if p.UsedMemory == nil {
		b.WriteString(unavailable)
	} else {
		b.WriteString(strconv.FormatUint(*p.UsedMemory>>defaults.MegabyteShift, 10))
		b.WriteByte('M')
	}
	b.WriteByte(')')

	return b.String()
}
