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

	"github.com/google/crosstab/core/pivot"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the fields of the input dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := loadDataset()
		if err != nil {
			return err
		}
		engine := pivot.New(dataset)
		for _, field := range engine.Fields() {
			fmt.Println(field)
		}
		return nil
	},
}

var valuesCmd = &cobra.Command{
	Use:   "values <field>",
	Short: "List the distinct values of a field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := loadDataset()
		if err != nil {
			return err
		}
		engine := pivot.New(dataset)
		for _, value := range engine.UniqueValues(args[0]) {
			fmt.Println(value)
		}
		return nil
	},
}
