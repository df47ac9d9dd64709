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
	"fmt"
	"os"

	"github.com/google/crosstab/core/records"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// JsonLoader loads JSON documents into record datasets. The document must
// be an array of flat objects. Values arrive as dynamic protobuf Struct
// values: numbers become numeric cells, strings and booleans become
// strings, nulls become missing values. Nested objects and arrays are
// ignored — the pivot engine operates on flat scalar records.
//
// Required config keys:
//   - file_path: Path to the JSON file
type JsonLoader struct{}

// NewJsonLoader creates a new JSON loader.
func NewJsonLoader() *JsonLoader {
	return &JsonLoader{}
}

// SourceType returns "json".
func (l *JsonLoader) SourceType() string {
	return "json"
}

// Load loads a JSON file and returns a Dataset.
func (l *JsonLoader) Load(config map[string]string) (records.Dataset, error) {
	filePath := config["file_path"]
	if filePath == "" {
		return nil, fmt.Errorf("file_path is required")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return ImportJSON(data)
}

// ImportJSON parses a JSON array of flat objects into a Dataset.
func ImportJSON(data []byte) (records.Dataset, error) {
	var list structpb.ListValue
	if err := protojson.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	dataset := make(records.Dataset, 0, len(list.GetValues()))
	for i, value := range list.GetValues() {
		obj := value.GetStructValue()
		if obj == nil {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
		rec := make(records.Record, len(obj.GetFields()))
		for field, cell := range obj.GetFields() {
			switch kind := cell.GetKind().(type) {
			case *structpb.Value_NumberValue:
				rec[field] = kind.NumberValue
			case *structpb.Value_StringValue:
				rec[field] = kind.StringValue
			case *structpb.Value_BoolValue:
				rec[field] = records.Format(kind.BoolValue)
			case *structpb.Value_NullValue:
				// missing value
			default:
				// nested object or array: not a scalar, skip
			}
		}
		dataset = append(dataset, rec)
	}
	return dataset, nil
}
