// Copyright 2025 Google LLC
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

// Package fmt provides utility methods for building human-readable reports.
package fmt

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Number adds a number prefix to all lines in a string.
func Number(x string) string {
	lines := slices.Collect(strings.Lines(x))
	numDigits := int(math.Log10(float64(len(lines)))) + 1
	fmtString := fmt.Sprintf("%%0%dd %%s", numDigits)
	var s strings.Builder
	for i, line := range lines {
		s.WriteString(fmt.Sprintf(fmtString, i+1, line))
	}
	return s.String()
}

// Indent prefixes all the non-empty lines of a string.
func Indent(prefix, x string) string {
	var y strings.Builder
	for line := range strings.Lines(x) {
		if strings.TrimSpace(line) != "" {
			y.WriteString(prefix)
		}
		y.WriteString(line)
	}
	return y.String()
}

// Row is a key,value pair in a report.
type Row struct {
	Key   string
	Value any
}

// Aligned returns one line per row such that all the values start on the same column.
func Aligned(rows ...Row) string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row.Key))
	}
	var s strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&s, "%-*s %v\n", width+1, row.Key+":", row.Value)
	}
	return s.String()
}
