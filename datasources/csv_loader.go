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

package datasources

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/crosstab/core/records"
)

// CsvLoader loads CSV files into record datasets. Column types are inferred
// from the data: a column whose sampled values all parse as numbers loads
// as numeric cells, everything else as strings. Empty cells load as missing
// values.
//
// Required config keys:
//   - file_path: Path to the CSV file
//
// Optional config keys:
//   - has_header: "true" or "false" (default: "true")
//   - delimiter: Field delimiter (default: ",")
type CsvLoader struct{}

// NewCsvLoader creates a new CSV loader.
func NewCsvLoader() *CsvLoader {
	return &CsvLoader{}
}

// SourceType returns "csv".
func (l *CsvLoader) SourceType() string {
	return "csv"
}

// CsvOptions control CSV parsing.
type CsvOptions struct {
	HasHeader bool
	Delimiter rune
}

// DefaultCsvOptions returns options for a comma-separated file with a
// header row.
func DefaultCsvOptions() CsvOptions {
	return CsvOptions{HasHeader: true, Delimiter: ','}
}

// Load loads a CSV file and returns a Dataset.
func (l *CsvLoader) Load(config map[string]string) (records.Dataset, error) {
	filePath := config["file_path"]
	if filePath == "" {
		return nil, fmt.Errorf("file_path is required")
	}

	options := DefaultCsvOptions()
	if h := config["has_header"]; h == "false" {
		options.HasHeader = false
	}
	if d := config["delimiter"]; d != "" {
		options.Delimiter = rune(d[0])
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return ImportCsv(file, options)
}

// ImportCsv reads CSV data from a reader and returns a Dataset.
func ImportCsv(r io.Reader, options CsvOptions) (records.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = options.Delimiter

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV input is empty")
	}

	var fields []string
	dataStart := 0
	if options.HasHeader {
		fields = rows[0]
		dataStart = 1
	} else {
		for i := range rows[0] {
			fields = append(fields, fmt.Sprintf("col_%d", i))
		}
	}

	dataRows := rows[dataStart:]
	if len(dataRows) == 0 {
		return nil, fmt.Errorf("CSV input has no data rows")
	}

	numeric := inferNumericColumns(fields, dataRows)

	dataset := make(records.Dataset, 0, len(dataRows))
	for _, row := range dataRows {
		rec := make(records.Record, len(fields))
		for i, field := range fields {
			if i >= len(row) || row[i] == "" {
				continue // missing value
			}
			if numeric[i] {
				if v, err := strconv.ParseFloat(row[i], 64); err == nil {
					rec[field] = v
					continue
				}
			}
			rec[field] = row[i]
		}
		dataset = append(dataset, rec)
	}
	return dataset, nil
}

// inferNumericColumns samples up to 100 rows per column to decide whether
// every non-empty value parses as a number.
func inferNumericColumns(fields []string, rows [][]string) []bool {
	numeric := make([]bool, len(fields))
	for col := range fields {
		numeric[col] = isNumericColumn(col, rows)
	}
	return numeric
}

func isNumericColumn(col int, rows [][]string) bool {
	sampleSize := len(rows)
	if sampleSize > 100 {
		sampleSize = 100
	}
	seen := false
	for i := 0; i < sampleSize; i++ {
		if col >= len(rows[i]) || rows[i][col] == "" {
			continue
		}
		if _, err := strconv.ParseFloat(rows[i][col], 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}
