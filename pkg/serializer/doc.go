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

// Package serializer writes status reports in the supported output formats.
//
// # Supported Formats
//
// Table (default):
//   - Colorized status table for terminals
//   - Rendered by a TableRenderer supplied with WithTableRenderer
//
// JSON:
//   - Machine-parseable, indented
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// # Usage
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// Write to a file, falling back to stdout when path is empty:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "status.json")
//	defer w.Close()
package serializer
