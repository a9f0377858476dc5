// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package query turns a set of user selections into an ordered list of flags.

Pipeline, each stage narrowing the previous one:

 1. Search: display name, bilingual keywords or motto text.
 2. Color mode: exclusive palette (and) or exclusion (not) over the color filters.
 3. Pattern: positional band matching, plus a fixed list for diagonal divisions.
 4. Conjunction: every remaining filter must match.
 5. Sort: by collated name, population or area.

The engine is pure. It reads the dataset and the country directory and never
mutates them. Results are not cached; callers memoize when they need to.
*/
package query

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/taibuivan/flagdex/internal/core/color"
	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
	"github.com/taibuivan/flagdex/pkg/slice"
	"github.com/taibuivan/flagdex/pkg/slug"
)

// Directory supplies the per-country values the pipeline reads.
type Directory interface {
	Name(key string, lang country.Language) string
	Population(key string) int64
	Area(key string) float64
}

// diagonalCountries have a diagonal division whatever their layout tag says.
var diagonalCountries = []string{
	"Brunei",
	"Democratic Republic of the Congo",
	"Marshall Islands",
	"Namibia",
	"Papua New Guinea",
	"Republic of the Congo",
	"Saint Kitts and Nevis",
	"Solomon Islands",
	"Tanzania",
	"Trinidad and Tobago",
}

// Result is the ordered output of a query.
type Result struct {
	Records []*flag.Record

	// Total is the size of the whole dataset.
	Total int
}

// Filtered returns the number of matching records.
func (r Result) Filtered() int { return len(r.Records) }

// Engine runs queries over one dataset.
type Engine struct {
	dataset   *flag.Dataset
	matcher   *filter.Engine
	directory Directory
}

// NewEngine creates a query engine.
func NewEngine(dataset *flag.Dataset, matcher *filter.Engine, directory Directory) *Engine {
	return &Engine{dataset: dataset, matcher: matcher, directory: directory}
}

// Matcher returns the filter engine used by the pipeline.
func (engine *Engine) Matcher() *filter.Engine { return engine.matcher }

// Dataset returns the queried dataset.
func (engine *Engine) Dataset() *flag.Dataset { return engine.dataset }

// # Pipeline

// Run applies the five stages to the dataset.
func (engine *Engine) Run(params Params) Result {
	records := slices.Clone(engine.dataset.All())

	// 1. Search
	records = engine.search(records, params.Search, params.Language)

	// 2. Color mode
	selected, rest := engine.splitColorFilters(params.Filters, params.Mode)
	if len(selected) > 0 {
		records = slice.Filter(records, func(rec *flag.Record) bool {
			return matchesColorMode(rec, selected, params.Mode)
		})
	}

	// 3. Pattern
	if params.Pattern.Active() {
		records = slice.Filter(records, func(rec *flag.Record) bool {
			return matchesPattern(rec, params.Pattern)
		})
	}

	// 4. Conjunction
	if len(rest) > 0 {
		records = slice.Filter(records, func(rec *flag.Record) bool {
			return engine.matcher.MatchesAll(rec, rest)
		})
	}

	// 5. Sort
	engine.order(records, params.Sort, params.Language)

	return Result{Records: records, Total: engine.dataset.Len()}
}

func (engine *Engine) search(records []*flag.Record, text string, lang country.Language) []*flag.Record {
	folded := slug.Fold(text)
	if folded == "" {
		return records
	}
	keywords := parseKeywords(folded)

	return slice.Filter(records, func(rec *flag.Record) bool {
		if strings.Contains(slug.Fold(engine.directory.Name(rec.CountryKey, lang)), folded) {
			return true
		}
		if keywords.matches(rec) {
			return true
		}
		for _, motto := range rec.Mottos() {
			if strings.Contains(slug.Fold(motto), folded) {
				return true
			}
		}
		return false
	})
}

// splitColorFilters separates the leaf color filters consumed by the color mode
// stage from the filters left for the conjunction. Under the or mode nothing is
// consumed.
func (engine *Engine) splitColorFilters(filters []filter.ActiveFilter, mode ColorMode) ([]string, []filter.ActiveFilter) {
	if mode != ModeAnd && mode != ModeNot {
		return nil, filters
	}

	registry := engine.matcher.Registry()
	var selected []string
	var rest []filter.ActiveFilter
	for _, f := range filters {
		if f.Kind() == filter.KindLeaf && registry.IsColorCategory(f.CategoryID) {
			selected = append(selected, f.ElementID)
			continue
		}
		rest = append(rest, f)
	}
	return selected, rest
}

func matchesColorMode(rec *flag.Record, selected []string, mode ColorMode) bool {
	switch mode {
	case ModeAnd:
		// An empty palette is a subset of any selection
		for _, c := range rec.Colors {
			if !color.MatchAny(c, selected) {
				return false
			}
		}
		return true
	case ModeNot:
		for _, c := range rec.Colors {
			if color.MatchAny(c, selected) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func matchesPattern(rec *flag.Record, p filter.PatternFilter) bool {
	if filter.MatchesPattern(rec, p) {
		return true
	}
	if p.SchemaID != filter.SchemaDiagonalDivision || !slices.Contains(diagonalCountries, rec.CountryKey) {
		return false
	}
	return !p.RequireSymbol || filter.HasSymbol(rec)
}

// # Sorting

func (engine *Engine) order(records []*flag.Record, key SortKey, lang country.Language) {
	switch key {
	case SortPopulationAsc, SortPopulationDesc:
		values := make(map[string]int64, len(records))
		for _, rec := range records {
			values[rec.CountryKey] = engine.directory.Population(rec.CountryKey)
		}
		sort.SliceStable(records, func(i, j int) bool {
			a, b := values[records[i].CountryKey], values[records[j].CountryKey]
			if key == SortPopulationDesc {
				return a > b
			}
			return a < b
		})

	case SortAreaAsc, SortAreaDesc:
		values := make(map[string]float64, len(records))
		for _, rec := range records {
			values[rec.CountryKey] = engine.directory.Area(rec.CountryKey)
		}
		sort.SliceStable(records, func(i, j int) bool {
			a, b := values[records[i].CountryKey], values[records[j].CountryKey]
			if key == SortAreaDesc {
				return a > b
			}
			return a < b
		})

	default:
		names := make(map[string]string, len(records))
		for _, rec := range records {
			names[rec.CountryKey] = engine.directory.Name(rec.CountryKey, lang)
		}
		// Collators keep internal buffers, one per call.
		collator := collate.New(languageTag(lang), collate.IgnoreCase)
		sort.SliceStable(records, func(i, j int) bool {
			cmp := collator.CompareString(names[records[i].CountryKey], names[records[j].CountryKey])
			if key == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
}

func languageTag(lang country.Language) language.Tag {
	if lang == country.English {
		return language.English
	}
	return language.French
}
