// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
	"github.com/taibuivan/flagdex/internal/core/taxonomy"
	"github.com/taibuivan/flagdex/pkg/pointer"
)

func label(en string) taxonomy.Label { return taxonomy.Label{EN: en} }

func element(id string) taxonomy.Element { return taxonomy.Element{ID: id, Label: label(id)} }

// testTree is a reduced taxonomy covering the categories the tests exercise.
func testTree(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()

	tree, err := taxonomy.New([]taxonomy.Category{
		{ID: "colors", Label: label("Colors"), Subcategories: []taxonomy.Subcategory{
			{ID: "primary_colors", Label: label("Primary"), Elements: []taxonomy.Element{element("red"), element("blue")}},
			{ID: "other_colors", Label: label("Other"), Elements: []taxonomy.Element{element("maroon")}},
		}},
		{ID: "celestial", Label: label("Celestial"), Subcategories: []taxonomy.Subcategory{
			{ID: "celestial_bodies", Label: label("Bodies"), Elements: []taxonomy.Element{element("sun"), element("crescent")}},
			{ID: "celestial_stars", Label: label("Stars"), Elements: []taxonomy.Element{element("stars"), element("constellation")}},
		}},
		{ID: "culture_regions", Label: label("Regions"), Subcategories: []taxonomy.Subcategory{
			{ID: "cultural_groupings", Label: label("Groupings"), Elements: []taxonomy.Element{element("nordic")}},
		}},
	})
	require.NoError(t, err)
	return tree
}

type fakeProportions map[string]string

func (f fakeProportions) Bucket(key string) string {
	if b, ok := f[key]; ok {
		return b
	}
	return "wide"
}

func testEngine(t *testing.T) *filter.Engine {
	t.Helper()
	return filter.NewEngine(filter.DefaultRegistry(), testTree(t), fakeProportions{"Switzerland": "square", "Nepal": "non_rectangular"})
}

// testRecords returns a small dataset keyed by country.
func testRecords(t *testing.T) map[string]*flag.Record {
	t.Helper()

	records := []*flag.Record{
		{CountryKey: "France", Continent: "europe", Colors: []string{"blue", "white", "red"}, ColorCount: 3, Layout: "vertical_triband", BandColors: []string{"blue", "white", "red"}},
		{CountryKey: "Austria", Continent: "europe", Colors: []string{"red", "white"}, ColorCount: 2, Layout: "horizontal_triband"},
		{CountryKey: "Qatar", Continent: "asia", Colors: []string{"maroon", "white"}, ColorCount: 2, Layout: "serrated_vertical_bicolor"},
		{CountryKey: "Israel", Continent: "asia", Colors: []string{"blue", "white"}, ColorCount: 2, Layout: "horizontal_stripes",
			Attributes: []flag.Attribute{{Element: "star_of_david", Color: "blue"}}},
		{CountryKey: "Vietnam", Continent: "asia", Colors: []string{"red", "yellow"}, ColorCount: 2, Layout: "plain",
			Attributes: []flag.Attribute{{Element: "single_star", Color: "yellow"}}},
		{CountryKey: "Australia", Continent: "oceania", Colors: []string{"blue", "white", "red"}, ColorCount: 3, Layout: "canton",
			Attributes: []flag.Attribute{
				{Element: "union_jack"},
				{Element: "single_star", Type: "commonwealth_star"},
				{Element: "constellation", Count: pointer.To(5), Includes: []string{"southern_cross"}},
			}},
		{CountryKey: "United States", Continent: "north_america", Colors: []string{"red", "white", "blue"}, ColorCount: 3, Layout: "stripes_with_canton",
			Attributes: []flag.Attribute{{Element: "multiple_stars", Count: pointer.To(50)}}},
		{CountryKey: "Canada", Continent: "north_america", Colors: []string{"red", "white"}, ColorCount: 2, Layout: "canadian_pale",
			Attributes: []flag.Attribute{{Element: "maple_leaf"}}},
		{CountryKey: "Cyprus", Continent: "asia", Colors: []string{"white", "copper", "green"}, ColorCount: 2, Layout: "plain",
			Attributes: []flag.Attribute{{Element: "island_map", Color: "copper"}, {Element: "olive_branch", Count: pointer.To(2)}}},
		{CountryKey: "Switzerland", Continent: "europe", Colors: []string{"red", "white"}, ColorCount: 2, Layout: "square_cross"},
		{CountryKey: "Sweden", Continent: "europe", Colors: []string{"blue", "yellow"}, ColorCount: 2, Layout: "nordic_cross"},
		{CountryKey: "Nepal", Continent: "asia", Colors: []string{"crimson", "blue", "white"}, ColorCount: 3, Layout: "double_pennon",
			Attributes: []flag.Attribute{{Element: "moon"}, {Element: "sun"}}},
		{CountryKey: "Brazil", Continent: "south_america", Colors: []string{"green", "yellow", "blue", "white"}, ColorCount: 4, Layout: "diamond",
			Attributes: []flag.Attribute{{Element: "celestial_globe", Includes: []string{"stars_arc", "motto_band"}}, {Element: "stars_circle", Count: pointer.To(27)}}},
	}

	dataset, err := flag.NewDataset(records)
	require.NoError(t, err)

	out := make(map[string]*flag.Record, dataset.Len())
	for _, rec := range dataset.All() {
		out[rec.CountryKey] = rec
	}
	return out
}
