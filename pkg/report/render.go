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
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/NVIDIA/gpustat/pkg/defaults"
	apperrors "github.com/NVIDIA/gpustat/pkg/errors"
	"github.com/NVIDIA/gpustat/pkg/snapshotter"
)

// ColorMode controls ANSI styling of the table.
type ColorMode int

const (
	// ColorAuto styles output only when stdout is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways styles output regardless of the output stream.
	ColorAlways
	// ColorNever writes plain text.
	ColorNever
)

// String returns the name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ResolveColorMode maps the --color and --no-color flags to a mode.
// Suppression wins when both are set.
func ResolveColorMode(force, suppress bool) ColorMode {
	switch {
	case suppress:
		return ColorNever
	case force:
		return ColorAlways
	default:
		return ColorAuto
	}
}

// Renderer writes a report as the header line followed by the device table.
type Renderer struct {
	options  Options
	mode     ColorMode
	location *time.Location
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLocation sets the zone of the header timestamp. Defaults to time.Local.
func WithLocation(loc *time.Location) RendererOption {
	return func(r *Renderer) {
		if loc != nil {
			r.location = loc
		}
	}
}

// NewRenderer returns a Renderer for the given columns and color mode.
func NewRenderer(opts Options, mode ColorMode, ropts ...RendererOption) *Renderer {
	r := &Renderer{
		options:  opts.Resolved(),
		mode:     mode,
		location: time.Local,
	}
	for _, o := range ropts {
		o(r)
	}
	return r
}

// RenderTable implements serializer.TableRenderer. data must be a
// *snapshotter.Report.
func (r *Renderer) RenderTable(w io.Writer, data any) error {
	var rep *snapshotter.Report
	switch v := data.(type) {
	case *snapshotter.Report:
		rep = v
	case snapshotter.Report:
		rep = &v
	}
	if rep == nil {
		return apperrors.New(apperrors.ErrCodeInternal, fmt.Sprintf("cannot render %T as a status table", data))
	}

	if err := r.WriteHeaderLine(w, rep); err != nil {
		return err
	}

	table := newTable(w)
	for _, d := range rep.Devices {
		row := BuildRow(d, r.options)
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = r.paint(c)
		}
		table.Append(cells)
	}
	table.Render()

	return nil
}

// WriteHeaderLine writes "hostname<TAB>timestamp<TAB>driver".
func (r *Renderer) WriteHeaderLine(w io.Writer, rep *snapshotter.Report) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
		rep.Hostname,
		rep.Timestamp.In(r.location).Format(defaults.TimestampLayout),
		rep.DriverVersion)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeIO, "failed to write header line", err)
	}
	return nil
}

func (r *Renderer) paint(c Cell) string {
	if r.mode == ColorNever {
		return c.Text
	}

	p := color.New(c.Color)
	if c.Bold {
		p.Add(color.Bold)
	}
	if r.mode == ColorAlways {
		p.EnableColor()
	}
	return p.Sprint(c.Text)
}

// newTable returns a borderless table with "|" between columns and
// contents-sized columns.
func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetColumnSeparator("|")
	table.SetCenterSeparator("|")
	table.SetRowLine(false)
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
