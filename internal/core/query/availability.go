// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
)

// Availability maps category id to element id to whether selecting the pair would
// leave at least one flag.
type Availability map[string]map[string]bool

// Get reads one pair. Missing pairs are unavailable.
func (a Availability) Get(categoryID, elementID string) bool {
	return a[categoryID][elementID]
}

func (a Availability) set(categoryID, elementID string, available bool) {
	elements, ok := a[categoryID]
	if !ok {
		elements = make(map[string]bool)
		a[categoryID] = elements
	}
	elements[elementID] = available
}

/*
IsAvailable reports whether candidate can still narrow result to something.

An active candidate is always available so it can be toggled off. Otherwise at least
one record of the already filtered result must match it.
*/
func (engine *Engine) IsAvailable(candidate filter.ActiveFilter, active []filter.ActiveFilter, result []*flag.Record) bool {
	if filter.Contains(active, candidate) {
		return true
	}
	for _, rec := range result {
		if engine.matcher.Matches(rec, candidate) {
			return true
		}
	}
	return false
}

// Availability evaluates every taxonomy pair, every category and subcategory node and
// every active filter against one result.
func (engine *Engine) Availability(active []filter.ActiveFilter, result []*flag.Record) Availability {
	tree := engine.matcher.Taxonomy()
	out := make(Availability)

	check := func(f filter.ActiveFilter) {
		out.set(f.CategoryID, f.ElementID, engine.IsAvailable(f, active, result))
	}

	for _, category := range tree.Categories {
		check(filter.New(filter.MainCategory, category.ID))
		for _, sub := range category.Subcategories {
			check(filter.New(filter.Subcategory, sub.ID))
			for _, element := range sub.Elements {
				check(filter.New(category.ID, element.ID))
			}
		}
	}
	for _, f := range active {
		out.set(f.CategoryID, f.ElementID, true)
	}
	return out
}
