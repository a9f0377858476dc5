// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog exposes the flag dataset to API clients.

It sits between the HTTP layer and the pure query engine:

  - Input validation: raw request values become a typed [query.Params].
  - Exploration: one query run plus its availability map, memoized per params.
  - Presentation: records become localized summaries and detail views.

Nothing in this package mutates the dataset. The memo is the only shared state.
*/
package catalog

import (
	"fmt"
	"strings"

	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
	"github.com/taibuivan/flagdex/internal/core/query"
	"github.com/taibuivan/flagdex/internal/platform/validate"
)

// Input limits.
const (
	maxFilters   = 64
	maxSearchLen = 100
)

// # Views

// FlagSummary is one row of a flag list.
type FlagSummary struct {
	CountryKey string   `json:"country_key"`
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Continent  string   `json:"continent"`
	Colors     []string `json:"colors"`
	Layout     string   `json:"layout"`
	Proportion string   `json:"proportion"`
}

// Names holds both display names of a country.
type Names struct {
	FR string `json:"fr"`
	EN string `json:"en"`
}

// FlagDetail is the full view of one flag.
type FlagDetail struct {
	Flag       *flag.Record `json:"flag"`
	Name       string       `json:"name"`
	Names      Names        `json:"names"`
	Ratio      string       `json:"ratio"`
	Proportion string       `json:"proportion"`
	StarCount  int          `json:"star_count"`
	Population int64        `json:"population"`
	Area       float64      `json:"area"`
}

// Exploration is the outcome of one query together with the availability of
// every taxonomy node against it.
type Exploration struct {
	Result       query.Result
	Availability query.Availability
}

// AvailabilityView is the payload of the availability endpoint.
type AvailabilityView struct {
	Filtered     int                `json:"filtered"`
	Total        int                `json:"total"`
	Availability query.Availability `json:"availability"`
}

// # Input

// Input carries the raw, unvalidated query values of a request.
type Input struct {
	Filters       []string
	Search        string
	Mode          string
	Schema        string
	Colors        []string
	RequireSymbol bool
	Sort          string
	Language      string
}

/*
Params validates the input and converts it into query parameters.

Returns:
  - query.Params: The typed parameters
  - error: A VALIDATION_ERROR listing every invalid field
*/
func (input Input) Params() (query.Params, error) {
	v := &validate.Validator{}

	filters := make([]filter.ActiveFilter, 0, len(input.Filters))
	for _, raw := range input.Filters {
		f, err := filter.Parse(raw)
		if err != nil {
			v.Custom("filter", true, fmt.Sprintf("Invalid filter %q, expected category:element", raw))
			continue
		}
		filters = append(filters, f)
	}
	v.MaxItems("filter", len(input.Filters), maxFilters)
	v.MaxLen("q", input.Search, maxSearchLen)

	mode, ok := query.ParseColorMode(input.Mode)
	v.Custom("mode", !ok, "Must be one of: or, and, not")

	sortKey, ok := query.ParseSortKey(input.Sort)
	v.Custom("sort", !ok, "Must be one of: "+joinSortKeys())

	lang, ok := country.ParseLanguage(input.Language)
	v.Custom("lang", !ok, "Must be one of: fr, en")

	schema := strings.ToLower(strings.TrimSpace(input.Schema))
	if schema != "" {
		v.Custom("schema", !filter.IsSchema(schema), "Must be one of: "+strings.Join(filter.Schemas(), ", "))
		v.MaxItems("colors", len(input.Colors), filter.BandCount(schema))
	} else {
		v.Custom("colors", len(input.Colors) > 0, "Colors require a schema")
		v.Custom("symbol", input.RequireSymbol, "Symbol requires a schema")
	}

	if err := v.Err(); err != nil {
		return query.Params{}, err
	}

	return query.Params{
		Filters: filters,
		Search:  strings.TrimSpace(input.Search),
		Mode:    mode,
		Pattern: filter.PatternFilter{
			SchemaID:      schema,
			Colors:        input.Colors,
			RequireSymbol: input.RequireSymbol,
		},
		Sort:     sortKey,
		Language: lang,
	}, nil
}

func joinSortKeys() string {
	keys := make([]string, len(query.SortKeys))
	for i, k := range query.SortKeys {
		keys[i] = string(k)
	}
	return strings.Join(keys, ", ")
}
