// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
)

/*
TestMatchesPattern covers positional band matching and layout-only schemas.
*/
func TestMatchesPattern(t *testing.T) {
	records := testRecords(t)

	tests := []struct {
		name     string
		country  string
		pattern  filter.PatternFilter
		expected bool
	}{
		{"wildcard_middle", "France", filter.PatternFilter{SchemaID: "vertical_triband", Colors: []string{"blue", "", "red"}}, true},
		{"first_band_mismatch", "France", filter.PatternFilter{SchemaID: "vertical_triband", Colors: []string{"red", "", ""}}, false},
		{"order_matters", "France", filter.PatternFilter{SchemaID: "vertical_triband", Colors: []string{"red", "white", "blue"}}, false},
		{"family_equivalence", "France", filter.PatternFilter{SchemaID: "vertical_triband", Colors: []string{"navy", "any", "*"}}, true},
		{"layout_rejects_first", "France", filter.PatternFilter{SchemaID: "horizontal_triband"}, false},
		{"symmetric_triband", "Austria", filter.PatternFilter{SchemaID: "horizontal_triband", Colors: []string{"red", "white", "red"}}, true},
		{"symmetric_triband_miss", "Austria", filter.PatternFilter{SchemaID: "horizontal_triband", Colors: []string{"white", "wildcard", "wildcard"}}, false},
		{"bicolor_first_two", "Qatar", filter.PatternFilter{SchemaID: "vertical_bicolor", Colors: []string{"maroon", ""}}, true},
		{"bicolor_maroon_not_red", "Qatar", filter.PatternFilter{SchemaID: "vertical_bicolor", Colors: []string{"red", ""}}, false},
		{"extra_slots_ignored", "Qatar", filter.PatternFilter{SchemaID: "vertical_bicolor", Colors: []string{"maroon", "white", "black"}}, true},
		{"layout_only_canton", "United States", filter.PatternFilter{SchemaID: "canton", Colors: []string{"green"}}, true},
		{"layout_only_nordic", "Sweden", filter.PatternFilter{SchemaID: "nordic_cross"}, true},
		{"layout_only_miss", "France", filter.PatternFilter{SchemaID: "nordic_cross"}, false},
		{"require_symbol_missing", "France", filter.PatternFilter{SchemaID: "vertical_triband", RequireSymbol: true}, false},
		{"inactive_pattern", "France", filter.PatternFilter{Colors: []string{"green"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.MatchesPattern(records[tt.country], tt.pattern))
		})
	}
}

/*
TestMatchesPattern_AllWildcards matches every flag whose layout carries the schema.
*/
func TestMatchesPattern_AllWildcards(t *testing.T) {
	pattern := filter.PatternFilter{SchemaID: "vertical_triband", Colors: []string{"", "*", "wildcard"}}

	for _, rec := range testRecords(t) {
		expected := rec.Layout == "vertical_triband"
		assert.Equal(t, expected, filter.MatchesPattern(rec, pattern), rec.CountryKey)
	}
}

/*
TestMatchesPattern_MissingBand fails when the flag has fewer bands than requested.
*/
func TestMatchesPattern_MissingBand(t *testing.T) {
	rec := &flag.Record{CountryKey: "Test", Colors: []string{"red"}, Layout: "horizontal_triband"}
	pattern := filter.PatternFilter{SchemaID: "horizontal_triband", Colors: []string{"", "", "red"}}

	assert.False(t, filter.MatchesPattern(rec, pattern))
	assert.True(t, filter.MatchesPattern(rec, filter.PatternFilter{SchemaID: "horizontal_triband", Colors: []string{"red"}}))
}

/*
TestBands follows the derivation priority.
*/
func TestBands(t *testing.T) {
	fromAttribute := &flag.Record{
		Colors:     []string{"green", "white", "orange"},
		Layout:     "vertical_triband",
		Attributes: []flag.Attribute{{Element: "vertical_triband", Colors: []string{"orange", "white", "green"}}},
	}
	assert.Equal(t, []string{"orange", "white", "green"}, filter.Bands(fromAttribute, "vertical_triband"))

	firstThree := &flag.Record{Colors: []string{"black", "red", "gold", "white"}}
	assert.Equal(t, []string{"black", "red", "gold"}, filter.Bands(firstThree, "horizontal_triband"))
	assert.Equal(t, []string{"black", "red"}, filter.Bands(firstThree, "horizontal_bicolor"))

	explicit := &flag.Record{Colors: []string{"a", "b"}, BandColors: []string{"b", "a", "b"}}
	assert.Equal(t, []string{"b", "a", "b"}, filter.Bands(explicit, "vertical_triband"))
}

/*
TestIsWildcard lists the accepted wildcard spellings.
*/
func TestIsWildcard(t *testing.T) {
	for _, slot := range []string{"", " ", "*", "any", "ANY", "wildcard"} {
		assert.True(t, filter.IsWildcard(slot), slot)
	}
	assert.False(t, filter.IsWildcard("red"))
}

/*
TestHasSymbol uses substring containment over the extracted elements.
*/
func TestHasSymbol(t *testing.T) {
	records := testRecords(t)

	assert.True(t, filter.HasSymbol(records["Vietnam"]))
	assert.True(t, filter.HasSymbol(records["Canada"]))
	assert.False(t, filter.HasSymbol(records["France"]))
}
