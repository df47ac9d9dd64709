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
	"log"
	"net/http"

	"github.com/google/crosstab/core/pivot"
	"github.com/google/crosstab/core/query"
	"github.com/google/crosstab/core/rendering"
	"github.com/google/crosstab/core/views"
	"github.com/google/crosstab/demo"
	"github.com/google/safehtml"
)

func main() {
	fmt.Println("Starting Crosstab...")

	// Build the engine over the demo sales dataset
	dataset := demo.CreateSalesDataset()
	engine := pivot.New(dataset)
	fmt.Printf("Loaded %d records with fields %v\n", engine.Len(), engine.Fields())

	// Create renderer
	renderer, err := rendering.NewPivotRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	// Pivot handler
	http.HandleFunc("/pivot", func(w http.ResponseWriter, r *http.Request) {
		// Parse URL into Query
		q := query.NewQuery(r.URL)

		// Fall back to a sensible default view when no fields are given
		if len(q.RowFields) == 0 && len(q.ColumnFields) == 0 {
			q.RowFields = []string{"region"}
			q.ColumnFields = []string{"product"}
		}
		if len(q.ValueFields) == 0 {
			q.ValueFields = []string{"sales"}
		}

		cfg, err := q.Config()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Advisory warnings are rendered alongside the table, they do
		// not block the request
		problems := engine.ValidateConfig(cfg)

		result, err := engine.Produce(cfg, q.Conditions())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		viewModel := views.BuildPivotViewModel("Crosstab Demo", result, q, problems)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.Render(w, viewModel); err != nil {
			// Log the error instead of trying to write an error response
			// since the renderer may have already written to the response
			log.Printf("Template rendering error: %v", err)
			return
		}
	})

	// Landing page with links to preset pivot views
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		landingVM := views.LandingViewModel{
			Title:    "Crosstab Demo",
			Subtitle: "Cross-tabulate the demo sales dataset with configurable row, column, and value fields",
			Views: []views.ViewInfo{
				{
					Name:        "Sales by Region and Product",
					Description: "Total sales per region with one column per product.",
					URL:         safehtml.URLSanitized("/pivot?rows=region&cols=product&values=sales&agg=sum"),
				},
				{
					Name:        "Average Sales by Product and Quarter",
					Description: "Average sale amount per product with one column per quarter.",
					URL:         safehtml.URLSanitized("/pivot?rows=product&cols=quarter&values=sales&agg=avg"),
				},
				{
					Name:        "Order Counts by Region",
					Description: "Number of records per region, collapsed over all products.",
					URL:         safehtml.URLSanitized("/pivot?rows=region&values=sales&agg=count"),
				},
				{
					Name:        "Units by Region/Quarter and Product",
					Description: "Composite row grouping on region and quarter, units summed per product.",
					URL:         safehtml.URLSanitized("/pivot?rows=region,quarter&cols=product&values=units&agg=sum"),
				},
				{
					Name:        "Laptop Sales Only",
					Description: "Sales per region filtered to the Laptop product line.",
					URL:         safehtml.URLSanitized("/pivot?rows=region&cols=quarter&values=sales&agg=sum&filter:product=Laptop"),
				},
			},
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.RenderLanding(w, landingVM); err != nil {
			log.Printf("Landing page rendering error: %v", err)
			return
		}
	})

	fmt.Println("\nServer starting on http://127.0.0.1:8097")
	log.Fatal(http.ListenAndServe("127.0.0.1:8097", nil))
}
