/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Crosstab Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"strings"
)

// renderAscii returns a string representation of the table with ASCII
// borders. The first row is the header.
func renderAscii(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	widths := columnWidths(rows)

	var sb strings.Builder
	writeSeparator(&sb, widths)
	writeRow(&sb, rows[0], widths)
	writeSeparator(&sb, widths)
	for _, row := range rows[1:] {
		writeRow(&sb, row, widths)
	}
	writeSeparator(&sb, widths)
	return sb.String()
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		sb.WriteString("|")
		sb.WriteString(fmt.Sprintf(" %-*s ", width, cell))
	}
	sb.WriteString("|\n")
}

func writeSeparator(sb *strings.Builder, widths []int) {
	for _, width := range widths {
		sb.WriteString("+")
		sb.WriteString(strings.Repeat("-", width+2))
	}
	sb.WriteString("+\n")
}
