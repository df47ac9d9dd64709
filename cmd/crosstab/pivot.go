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
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/google/crosstab/core/filters"
	"github.com/google/crosstab/core/pivot"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	specPath    string
	rowFields   []string
	colFields   []string
	valueFields []string
	aggregate   string
	filterArgs  []string
	outputMode  string
)

var pivotCmd = &cobra.Command{
	Use:   "pivot",
	Short: "Compute a cross-tabulation",
	Long: `Compute a cross-tabulation of the input dataset.

The pivot shape comes either from flags (--rows, --cols, --values, --agg,
--filter) or from a YAML spec file (--spec). Filter flags take the form
column=value; the value may start with "!" (not equals), ">" or "<"
(numeric comparison), or "~" (contains).`,
	RunE: runPivot,
}

func init() {
	pivotCmd.Flags().StringVar(&specPath, "spec", "", "path to a YAML pivot spec file")
	pivotCmd.Flags().StringSliceVar(&rowFields, "rows", nil, "row dimension fields")
	pivotCmd.Flags().StringSliceVar(&colFields, "cols", nil, "column dimension fields")
	pivotCmd.Flags().StringSliceVar(&valueFields, "values", nil, "value fields to aggregate")
	pivotCmd.Flags().StringVar(&aggregate, "agg", "sum", "aggregate function")
	pivotCmd.Flags().StringArrayVar(&filterArgs, "filter", nil, "filter condition, column=value (repeatable)")
	pivotCmd.Flags().StringVarP(&outputMode, "output", "o", "ascii", "output format: ascii or csv")
}

// PivotSpec is the YAML representation of a pivot configuration.
type PivotSpec struct {
	Rows      []string     `yaml:"rows"`
	Cols      []string     `yaml:"cols"`
	Values    []string     `yaml:"values"`
	Aggregate string       `yaml:"aggregate"`
	Filters   []FilterSpec `yaml:"filters"`
}

// FilterSpec is one filter condition in a YAML pivot spec.
type FilterSpec struct {
	Column   string `yaml:"column"`
	Operator string `yaml:"operator"`
	Value    string `yaml:"value"`
}

func runPivot(cmd *cobra.Command, args []string) error {
	cfg, conds, err := resolvePivotConfig()
	if err != nil {
		return err
	}

	dataset, err := loadDataset()
	if err != nil {
		return err
	}
	engine := pivot.New(dataset)

	// Advisory warnings go to stderr, they do not block the run
	for _, problem := range engine.ValidateConfig(cfg) {
		fmt.Fprintf(os.Stderr, "WARN: %s\n", problem)
	}

	result, err := engine.Produce(cfg, conds)
	if err != nil {
		return fmt.Errorf("failed to compute pivot: %w", err)
	}

	rows := pivot.ToRows(result)
	switch outputMode {
	case "ascii":
		fmt.Print(renderAscii(rows))
	case "csv":
		writer := csv.NewWriter(os.Stdout)
		if err := writer.WriteAll(rows); err != nil {
			return fmt.Errorf("failed to write CSV output: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", outputMode)
	}
	return nil
}

// resolvePivotConfig builds the engine configuration from the spec file if
// given, otherwise from the flags.
func resolvePivotConfig() (pivot.Config, []filters.Condition, error) {
	if specPath != "" {
		return loadPivotSpec(specPath)
	}

	cfg, err := pivot.NewConfig(rowFields, colFields, valueFields, aggregate)
	if err != nil {
		return pivot.Config{}, nil, err
	}

	conds := make([]filters.Condition, 0, len(filterArgs))
	for _, arg := range filterArgs {
		cond, err := parseFilterArg(arg)
		if err != nil {
			return pivot.Config{}, nil, err
		}
		conds = append(conds, cond)
	}
	return cfg, conds, nil
}

func loadPivotSpec(path string) (pivot.Config, []filters.Condition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pivot.Config{}, nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var spec PivotSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return pivot.Config{}, nil, fmt.Errorf("failed to parse spec file: %w", err)
	}
	if spec.Aggregate == "" {
		spec.Aggregate = "sum"
	}

	cfg, err := pivot.NewConfig(spec.Rows, spec.Cols, spec.Values, spec.Aggregate)
	if err != nil {
		return pivot.Config{}, nil, err
	}

	conds := make([]filters.Condition, 0, len(spec.Filters))
	for _, f := range spec.Filters {
		op := filters.Operator(f.Operator)
		if f.Operator == "" {
			op = filters.Equals
		}
		conds = append(conds, filters.Condition{Column: f.Column, Operator: op, Value: f.Value})
	}
	return cfg, conds, nil
}

// parseFilterArg parses a column=value flag into a condition. The value may
// carry the same operator prefixes the web query syntax uses.
func parseFilterArg(arg string) (filters.Condition, error) {
	column, value, ok := strings.Cut(arg, "=")
	if !ok {
		return filters.Condition{}, fmt.Errorf("invalid filter %q, expected column=value", arg)
	}

	op := filters.Equals
	switch {
	case strings.HasPrefix(value, "!"):
		op, value = filters.NotEquals, value[1:]
	case strings.HasPrefix(value, ">"):
		op, value = filters.GreaterThan, value[1:]
	case strings.HasPrefix(value, "<"):
		op, value = filters.LessThan, value[1:]
	case strings.HasPrefix(value, "~"):
		op, value = filters.Contains, value[1:]
	}
	return filters.Condition{Column: column, Operator: op, Value: value}, nil
}
