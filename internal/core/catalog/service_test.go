// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/query"
	"github.com/taibuivan/flagdex/internal/platform/apperr"
)

/*
TestInput_Params validates raw values and reports the offending field.
*/
func TestInput_Params(t *testing.T) {
	tests := []struct {
		name  string
		input catalog.Input
		field string
	}{
		{"empty_is_valid", catalog.Input{}, ""},
		{"full_is_valid", catalog.Input{
			Filters: []string{"colors:red", "main_category:animals"},
			Search:  "étoile", Mode: "AND", Schema: "vertical_triband",
			Colors: []string{"blue", "", "red"}, RequireSymbol: true, Sort: "area_desc", Language: "en",
		}, ""},
		{"malformed_filter", catalog.Input{Filters: []string{"colors"}}, "filter"},
		{"unknown_mode", catalog.Input{Mode: "xor"}, "mode"},
		{"unknown_sort", catalog.Input{Sort: "color"}, "sort"},
		{"unknown_language", catalog.Input{Language: "de"}, "lang"},
		{"unknown_schema", catalog.Input{Schema: "zigzag"}, "schema"},
		{"too_many_colors", catalog.Input{Schema: "vertical_bicolor", Colors: []string{"red", "white", "blue"}}, "colors"},
		{"colors_on_layout_only_schema", catalog.Input{Schema: "canton", Colors: []string{"red"}}, "colors"},
		{"colors_without_schema", catalog.Input{Colors: []string{"red"}}, "colors"},
		{"symbol_without_schema", catalog.Input{RequireSymbol: true}, "symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.Params()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			ae := apperr.As(err)
			require.NotNil(t, ae)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestInput_ParamsDefaults fills the defaults and resolves filter kinds.
*/
func TestInput_ParamsDefaults(t *testing.T) {
	params, err := catalog.Input{Filters: []string{"subcategory:birds"}, Schema: " Canton "}.Params()
	require.NoError(t, err)

	assert.Equal(t, query.ModeOr, params.Mode)
	assert.Equal(t, query.SortNameAsc, params.Sort)
	assert.Equal(t, country.French, params.Language)
	assert.Equal(t, filter.SchemaCanton, params.Pattern.SchemaID)
	require.Len(t, params.Filters, 1)
	assert.Equal(t, filter.KindSubcategory, params.Filters[0].Kind())
}

/*
TestService_Explore runs a query over the bundled data and memoizes it.
*/
func TestService_Explore(t *testing.T) {
	service, dataset := newService(t)
	params := query.Params{Filters: []filter.ActiveFilter{filter.New("celestial", "constellation")}}

	first, err := service.Explore(context.Background(), params)
	require.NoError(t, err)

	names := service.Summaries(first.Result.Records, country.French)
	got := make([]string, len(names))
	for i, s := range names {
		got[i] = s.Name
	}
	assert.Equal(t, []string{"Australie", "Brésil", "Nouvelle-Zélande", "Papouasie-Nouvelle-Guinée"}, got)
	assert.Equal(t, dataset.Len(), first.Result.Total)

	assert.True(t, first.Availability.Get("continents", "oceania"))
	assert.False(t, first.Availability.Get("continents", "africa"))
	assert.True(t, first.Availability.Get("celestial", "constellation"))
	assert.True(t, first.Availability.Get(filter.MainCategory, "heraldry"))
	assert.False(t, first.Availability.Get("colors", "purple"))

	second, err := service.Explore(context.Background(), params)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

/*
TestService_Explore_DistinctColorSlots keeps band slots apart in the memo even when
a slot itself holds a comma.
*/
func TestService_Explore_DistinctColorSlots(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	split := query.Params{Pattern: filter.PatternFilter{SchemaID: "vertical_triband", Colors: []string{"blue", "white", "red"}}}
	merged := query.Params{Pattern: filter.PatternFilter{SchemaID: "vertical_triband", Colors: []string{"blue,white", "red"}}}

	first, err := service.Explore(ctx, split)
	require.NoError(t, err)
	second, err := service.Explore(ctx, merged)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Contains(t, keysOf(first), "France")
	assert.NotContains(t, keysOf(second), "France")
}

func keysOf(exploration *catalog.Exploration) []string {
	keys := make([]string, len(exploration.Result.Records))
	for i, rec := range exploration.Result.Records {
		keys[i] = rec.CountryKey
	}
	return keys
}

/*
TestService_Explore_NamePrefix keeps the first letters of a country name from
selecting every flag of a keyword family.
*/
func TestService_Explore_NamePrefix(t *testing.T) {
	service, _ := newService(t)

	tests := []struct {
		text     string
		lang     country.Language
		expected []string
	}{
		{"gre", country.English, []string{"Greece", "Iraq", "Brazil"}},
		{"cro", country.English, []string{"Croatia", "Federated States of Micronesia"}},
		{"rou", country.French, nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			exploration, err := service.Explore(context.Background(), query.Params{Search: tt.text, Language: tt.lang})
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, keysOf(exploration))
		})
	}
}

/*
TestService_Explore_Cancelled refuses to work for a cancelled request.
*/
func TestService_Explore_Cancelled(t *testing.T) {
	service, _ := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Explore(ctx, query.Params{})
	assert.ErrorIs(t, err, context.Canceled)
}

/*
TestService_Detail assembles the detail view.
*/
func TestService_Detail(t *testing.T) {
	service, _ := newService(t)

	tests := []struct {
		slug       string
		lang       country.Language
		name       string
		ratio      string
		proportion string
		stars      int
	}{
		{"france", country.French, "France", "2:3", country.BucketWide, 0},
		{"united-states", country.French, "États-Unis", "10:19", country.BucketElongated, 50},
		{"japan", country.English, "Japan", "2:3", country.BucketWide, 0},
		{"switzerland", country.French, "Suisse", "1:1", country.BucketSquare, 0},
		{"nepal", country.English, "Nepal", "1.219:1", country.BucketNonRectangular, 0},
		{"China", country.English, "China", "2:3", country.BucketWide, 5},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			detail, err := service.Detail(context.Background(), tt.slug, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.name, detail.Name)
			assert.Equal(t, tt.ratio, detail.Ratio)
			assert.Equal(t, tt.proportion, detail.Proportion)
			assert.Equal(t, tt.stars, detail.StarCount)
			assert.Zero(t, detail.Population)
		})
	}

	_, err := service.Detail(context.Background(), "atlantis", country.French)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
