// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/internal/core/country"
)

const directoryJSON = `{
  "France": {"fr": "France", "en": "France", "ratio": "2:3"},
  "Germany": {"fr": "Allemagne", "en": "Germany", "ratio": "3:5"},
  "Switzerland": {"fr": "Suisse", "en": "Switzerland", "ratio": "1:1"},
  "Nepal": {"fr": "Népal", "en": "Nepal", "ratio": "1.219:1"},
  "Qatar": {"en": "Qatar", "ratio": "11:28"}
}`

/*
TestParseLanguage accepts the two display languages and defaults to French.
*/
func TestParseLanguage(t *testing.T) {
	tests := []struct {
		raw      string
		expected country.Language
		ok       bool
	}{
		{"", country.French, true},
		{"fr", country.French, true},
		{"EN", country.English, true},
		{"de", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			lang, ok := country.ParseLanguage(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, lang)
		})
	}
}

/*
TestDirectory_Names falls back from French to English to the key.
*/
func TestDirectory_Names(t *testing.T) {
	directory, err := country.LoadDirectory(strings.NewReader(directoryJSON), nil)
	require.NoError(t, err)

	assert.Equal(t, "Allemagne", directory.Name("Germany", country.French))
	assert.Equal(t, "Germany", directory.Name("Germany", country.English))
	assert.Equal(t, "Qatar", directory.Name("Qatar", country.French))
	assert.Equal(t, "Atlantis", directory.Name("Atlantis", country.French))

	names := directory.Names("Qatar")
	assert.Equal(t, "Qatar", names.FR)
	assert.Equal(t, "Qatar", names.EN)
}

/*
TestDirectory_Buckets classifies the bundled ratios and defaults to 2:3.
*/
func TestDirectory_Buckets(t *testing.T) {
	directory, err := country.LoadDirectory(strings.NewReader(directoryJSON), nil)
	require.NoError(t, err)

	tests := []struct {
		key      string
		expected string
	}{
		{"France", country.BucketWide},
		{"Germany", country.BucketLong},
		{"Switzerland", country.BucketSquare},
		{"Nepal", country.BucketNonRectangular},
		{"Qatar", country.BucketElongated},
		{"Atlantis", country.BucketWide},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, directory.Bucket(tt.key))
		})
	}

	assert.Equal(t, "2:3", directory.Ratio("Atlantis").String())
}

/*
TestRatio_Bucket checks the bucket boundaries.
*/
func TestRatio_Bucket(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"13:15", country.BucketCompact},
		{"28:37", country.BucketCompact},
		{"2:3", country.BucketWide},
		{"16:25", country.BucketLong},
		{"4:7", country.BucketLong},
		{"1:2", country.BucketElongated},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ratio, err := country.ParseRatio(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ratio.Bucket())
		})
	}
}

/*
TestLoadDirectory_RejectsBadRatio fails at load rather than at lookup.
*/
func TestLoadDirectory_RejectsBadRatio(t *testing.T) {
	for _, raw := range []string{"3", "a:b", "0:3", "2:-1"} {
		_, err := country.LoadDirectory(strings.NewReader(`{"X": {"en": "X", "ratio": "`+raw+`"}}`), nil)
		assert.Error(t, err, raw)
	}
}

/*
TestDirectory_FiguresDefaultToZero reads zero until the store is filled.
*/
func TestDirectory_FiguresDefaultToZero(t *testing.T) {
	stats := country.NewStats()
	directory := country.NewDirectory(nil, stats)

	assert.Zero(t, directory.Population("France"))
	assert.Zero(t, directory.Area("France"))
	assert.True(t, stats.UpdatedAt().IsZero())

	stats.Replace(map[string]country.Figures{"France": {Population: 68_000_000, Area: 551_695}})

	assert.Equal(t, int64(68_000_000), directory.Population("France"))
	assert.InDelta(t, 551_695, directory.Area("France"), 0.001)
	assert.Equal(t, 1, stats.Len())
	assert.False(t, stats.UpdatedAt().IsZero())
}

/*
TestResolve re-keys lookup names through the alias table.
*/
func TestResolve(t *testing.T) {
	byName := map[string]country.Figures{
		"France":  {Population: 1},
		"Türkiye": {Population: 2},
		"Czechia": {Population: 3},
	}

	resolved := country.Resolve(byName, []string{"France", "Turkey", "Czech Republic", "Atlantis"})

	assert.Equal(t, map[string]country.Figures{
		"France":         {Population: 1},
		"Turkey":         {Population: 2},
		"Czech Republic": {Population: 3},
	}, resolved)
	assert.Equal(t, "Japan", country.LookupName("Japan"))
}
