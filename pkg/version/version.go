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


// Package version parses NVIDIA driver version strings such as "550.54.15"
// or "470.82" so they can be compared and exported as metric labels.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Version is a driver version with one to three numeric components.
// Raw keeps the original text because drivers use zero padded components
// ("535.104.05") that would be lost by String.
type Version struct {
	Major int
	Minor int
	Patch int

	// Precision is the number of components present (1, 2, or 3).
	Precision int

	Raw string
}

// String returns Major[.Minor[.Patch]] respecting the precision.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// ParseVersion parses a driver version. Surrounding whitespace and a "v"
// prefix are ignored.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Version{}, ErrEmptyVersion
	}

	parts := strings.Split(strings.TrimPrefix(raw, "v"), ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	v := Version{Precision: len(parts), Raw: raw}
	for i, part := range parts {
		num, err := parseComponent(part)
		if err != nil {
			return Version{}, err
		}
		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}
	return v, nil
}

func parseComponent(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("%w: empty component", ErrNonNumeric)
	}
	for _, ch := range part {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
	}
	num, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, part)
	}
	return num, nil
}

// Compare returns -1, 0 or 1 comparing v to other up to the lower of the
// two precisions.
func (v Version) Compare(other Version) int {
	precision := min(v.Precision, other.Precision)

	pairs := [][2]int{{v.Major, other.Major}, {v.Minor, other.Minor}, {v.Patch, other.Patch}}
	for i := 0; i < precision && i < len(pairs); i++ {
		switch {
		case pairs[i][0] < pairs[i][1]:
			return -1
		case pairs[i][0] > pairs[i][1]:
			return 1
		}
	}
	return 0
}
