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

package rendering

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/google/crosstab/core/pivot"
	"github.com/google/crosstab/core/query"
	"github.com/google/crosstab/core/records"
	"github.com/google/crosstab/core/views"
)

func TestRenderPivot(t *testing.T) {
	renderer, err := NewPivotRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	u, _ := url.Parse("/pivot?rows=region&cols=product&values=sales&agg=sum")
	q := query.NewQuery(u)

	engine := pivot.New(records.Dataset{
		{"region": "North", "product": "A", "sales": 100},
		{"region": "South", "product": "A", "sales": 150},
	})
	cfg, err := q.Config()
	if err != nil {
		t.Fatalf("bad query config: %v", err)
	}
	res, err := engine.Produce(cfg, q.Conditions())
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}

	vm := views.BuildPivotViewModel("Sales", res, q, nil)

	var buf bytes.Buffer
	if err := renderer.Render(&buf, vm); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Sales", "sales_A", "North", "150"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderLanding(t *testing.T) {
	renderer, err := NewPivotRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	var buf bytes.Buffer
	vm := views.LandingViewModel{
		Title:    "Crosstab",
		Subtitle: "Demo pivots",
	}
	if err := renderer.RenderLanding(&buf, vm); err != nil {
		t.Fatalf("RenderLanding failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Demo pivots") {
		t.Error("rendered landing missing subtitle")
	}
}
