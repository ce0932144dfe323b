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


// Package report turns a GPU status report into the terminal table.
//
// Every device becomes one Row of styled Cells. The column set depends only
// on Options, so all rows of a run have the same width:
//
//	index | name | temperature | utilization | [fan] | [encoder | decoder] | power | memory | processes
//
// A cell is emphasized (bold) when its metric is strictly above the fixed
// threshold in pkg/defaults. Renderer writes the host header line followed by
// the table and implements serializer.TableRenderer:
//
//	r := report.NewRenderer(opts, report.ResolveColorMode(force, suppress))
//	w := serializer.NewStdoutWriter(serializer.FormatTable, serializer.WithTableRenderer(r))
//
// Styling uses github.com/fatih/color and layout uses
// github.com/olekukonko/tablewriter.
package report
