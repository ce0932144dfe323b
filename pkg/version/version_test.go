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


package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr error
	}{
		{"production branch", "550.54.15", Version{Major: 550, Minor: 54, Patch: 15, Precision: 3, Raw: "550.54.15"}, nil},
		{"zero padded patch", "535.104.05", Version{Major: 535, Minor: 104, Patch: 5, Precision: 3, Raw: "535.104.05"}, nil},
		{"two components", "470.82", Version{Major: 470, Minor: 82, Precision: 2, Raw: "470.82"}, nil},
		{"major only", "560", Version{Major: 560, Precision: 1, Raw: "560"}, nil},
		{"v prefix and spaces", " v550.90.07\n", Version{Major: 550, Minor: 90, Patch: 7, Precision: 3, Raw: "v550.90.07"}, nil},
		{"empty", "", Version{}, ErrEmptyVersion},
		{"blank", "   ", Version{}, ErrEmptyVersion},
		{"too many components", "1.2.3.4", Version{}, ErrTooManyComponents},
		{"letters", "550.abc", Version{}, ErrNonNumeric},
		{"empty component", "550..15", Version{}, ErrNonNumeric},
		{"signed component", "550.+54", Version{}, ErrNonNumeric},
		{"negative", "-1", Version{}, ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"550.54.15", "550.54.15"},
		{"535.104.05", "535.104.5"},
		{"470.82", "470.82"},
		{"560", "560"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if err != nil {
				t.Fatalf("ParseVersion: %v", err)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"550.54.15", "550.54.15", 0},
		{"550.54.15", "550.54.14", 1},
		{"535.104.05", "550.54.15", -1},
		{"550", "550.54.15", 0},
		{"550.54", "550.90.07", -1},
		{"560.28.03", "550", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, err := ParseVersion(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := ParseVersion(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}
