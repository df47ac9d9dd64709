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
	"path/filepath"
	"strings"

	"github.com/google/crosstab/core/records"
	"github.com/google/crosstab/datasources"
	"github.com/spf13/cobra"
)

var (
	inputPath   string
	inputFormat string
	delimiter   string
	noHeader    bool
)

var rootCmd = &cobra.Command{
	Use:   "crosstab",
	Short: "Crosstab CLI",
	Long:  "Crosstab computes cross-tabulations (pivot tables) over CSV and JSON datasets.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "path to input file (required)")
	rootCmd.PersistentFlags().StringVar(&inputFormat, "format", "", "input format: csv or json (default: by file extension)")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	rootCmd.PersistentFlags().BoolVar(&noHeader, "no-header", false, "treat the first CSV row as data")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	rootCmd.AddCommand(pivotCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(valuesCmd)
}

// loadDataset loads the input file through the registered loaders. The
// source type comes from --format, falling back to the file extension.
func loadDataset() (records.Dataset, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("input path is required")
	}

	sourceType := inputFormat
	if sourceType == "" {
		sourceType = strings.TrimPrefix(filepath.Ext(inputPath), ".")
	}

	loaders := datasources.ByType(datasources.NewCsvLoader(), datasources.NewJsonLoader())
	loader, ok := loaders[sourceType]
	if !ok {
		return nil, fmt.Errorf("unsupported input format %q", sourceType)
	}

	config := map[string]string{"file_path": inputPath}
	if sourceType == "csv" {
		config["delimiter"] = delimiter
		if noHeader {
			config["has_header"] = "false"
		}
	}

	dataset, err := loader.Load(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return dataset, nil
}
