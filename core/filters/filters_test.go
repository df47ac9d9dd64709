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

package filters

import (
	"testing"

	"github.com/google/crosstab/core/records"
)

func testDataset() records.Dataset {
	return records.Dataset{
		{"region": "North", "product": "A", "sales": 100},
		{"region": "North", "product": "B", "sales": 200},
		{"region": "South", "product": "A", "sales": 150},
		{"region": "East", "product": "C"},
	}
}

func TestApplyEmptyConditionsIsIdentity(t *testing.T) {
	d := testDataset()
	got := Apply(d, nil)
	if len(got) != len(d) {
		t.Fatalf("expected %d records, got %d", len(d), len(got))
	}
	for i := range d {
		if !records.LooseEqual(got[i]["region"], d[i]["region"]) {
			t.Errorf("record %d changed: %v != %v", i, got[i], d[i])
		}
	}
}

func TestApplyAndSemantics(t *testing.T) {
	got := Apply(testDataset(), []Condition{
		{Column: "region", Operator: Equals, Value: "North"},
		{Column: "product", Operator: Equals, Value: "A"},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0]["sales"] != 100 {
		t.Errorf("wrong record matched: %v", got[0])
	}
}

func TestEqualsIsLoose(t *testing.T) {
	got := Apply(testDataset(), []Condition{
		{Column: "sales", Operator: Equals, Value: "100"},
	})
	if len(got) != 1 {
		t.Fatalf("expected numeric 100 to match string \"100\", got %d records", len(got))
	}
}

func TestNotEquals(t *testing.T) {
	got := Apply(testDataset(), []Condition{
		{Column: "region", Operator: NotEquals, Value: "North"},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
}

func TestNumericComparisons(t *testing.T) {
	greater := Apply(testDataset(), []Condition{
		{Column: "sales", Operator: GreaterThan, Value: 120},
	})
	if len(greater) != 2 {
		t.Errorf("greater_than 120: expected 2 records, got %d", len(greater))
	}

	less := Apply(testDataset(), []Condition{
		{Column: "sales", Operator: LessThan, Value: "150"},
	})
	if len(less) != 1 {
		t.Errorf("less_than 150: expected 1 record, got %d", len(less))
	}

	// Comparison value that does not parse matches nothing.
	none := Apply(testDataset(), []Condition{
		{Column: "sales", Operator: GreaterThan, Value: "abc"},
	})
	if len(none) != 0 {
		t.Errorf("unparseable bound: expected 0 records, got %d", len(none))
	}
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	got := Apply(testDataset(), []Condition{
		{Column: "region", Operator: Contains, Value: "ORTH"},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
}

func TestMissingColumnSemantics(t *testing.T) {
	// The East record has no sales field.
	eq := Apply(testDataset(), []Condition{
		{Column: "sales", Operator: Equals, Value: nil},
	})
	if len(eq) != 1 || eq[0]["region"] != "East" {
		t.Errorf("equals nil should match only the record missing the column, got %v", eq)
	}

	gt := Apply(testDataset(), []Condition{
		{Column: "sales", Operator: GreaterThan, Value: 0},
	})
	for _, rec := range gt {
		if rec["region"] == "East" {
			t.Error("missing column passed a numeric comparison")
		}
	}

	contains := Apply(testDataset(), []Condition{
		{Column: "sales", Operator: Contains, Value: "1"},
	})
	for _, rec := range contains {
		if rec["region"] == "East" {
			t.Error("missing column passed a contains comparison")
		}
	}
}
