// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/flagdex/internal/core/color"
	"github.com/taibuivan/flagdex/internal/core/flag"
	"github.com/taibuivan/flagdex/internal/core/taxonomy"
)

// ProportionLookup resolves the aspect ratio bucket of a country.
type ProportionLookup interface {
	Bucket(countryKey string) string
}

// Engine evaluates filters against flag records.
type Engine struct {
	registry    *Registry
	tree        *taxonomy.Taxonomy
	proportions ProportionLookup
}

// NewEngine creates an engine. proportions may be nil, in which case proportion
// filters never match.
func NewEngine(registry *Registry, tree *taxonomy.Taxonomy, proportions ProportionLookup) *Engine {
	return &Engine{registry: registry, tree: tree, proportions: proportions}
}

// Registry returns the rule table of the engine.
func (engine *Engine) Registry() *Registry { return engine.registry }

// Taxonomy returns the tree used for category and subcategory filters.
func (engine *Engine) Taxonomy() *taxonomy.Taxonomy { return engine.tree }

// # Dispatch

/*
Matches reports whether rec satisfies f.

Category filters match when any element of any of the category's subcategories
matches. Subcategory filters match when any of the subcategory's elements matches.
Leaf filters are dispatched through the registry.
*/
func (engine *Engine) Matches(rec *flag.Record, f ActiveFilter) bool {
	switch f.Kind() {
	case KindCategory:
		return engine.matchCategory(rec, f.ElementID)
	case KindSubcategory:
		return engine.matchSubcategory(rec, f.ElementID)
	default:
		return engine.MatchesLeaf(rec, f.CategoryID, f.ElementID)
	}
}

// MatchesAll reports whether rec satisfies every filter.
func (engine *Engine) MatchesAll(rec *flag.Record, filters []ActiveFilter) bool {
	for _, f := range filters {
		if !engine.Matches(rec, f) {
			return false
		}
	}
	return true
}

func (engine *Engine) matchCategory(rec *flag.Record, categoryID string) bool {
	for _, sub := range engine.tree.SubcategoriesOf(categoryID) {
		if engine.matchSubcategory(rec, sub) {
			return true
		}
	}
	return false
}

func (engine *Engine) matchSubcategory(rec *flag.Record, subcategoryID string) bool {
	categoryID, ok := engine.tree.CategoryOf(subcategoryID)
	if !ok {
		return false
	}
	for _, element := range engine.tree.ElementsOf(subcategoryID) {
		if engine.MatchesLeaf(rec, categoryID, element) {
			return true
		}
	}
	return false
}

// MatchesLeaf evaluates a leaf (category, element) pair. Unregistered categories
// fall back to the plain element test.
func (engine *Engine) MatchesLeaf(rec *flag.Record, categoryID, elementID string) bool {
	rule, ok := engine.registry.Rule(categoryID)
	if !ok {
		return matchElement(rec, elementID)
	}

	switch rule.Match {
	case MatchContinent:
		return rec.Continent == elementID
	case MatchColor:
		return slices.ContainsFunc(rec.Colors, func(c string) bool {
			return color.Match(c, elementID)
		})
	case MatchColorCount:
		return matchCountBucket(rec.ColorCount, elementID)
	case MatchStarCount:
		return matchCountBucket(StarCount(rec), elementID)
	case MatchLayout:
		return matchLayout(rec, rule, elementID)
	case MatchSymbol:
		return matchSymbol(rec, rule, elementID)
	case MatchProportion:
		return engine.proportions != nil && engine.proportions.Bucket(rec.CountryKey) == elementID
	case MatchAllowList:
		return slices.Contains(rule.AllowList[elementID], rec.CountryKey)
	default:
		return matchElement(rec, elementID)
	}
}

// # Predicates

// matchCountBucket compares n with a numeric bucket id such as "3" or "6+".
func matchCountBucket(n int, bucket string) bool {
	if threshold, open := strings.CutSuffix(bucket, "+"); open {
		floor, err := strconv.Atoi(threshold)
		return err == nil && n >= floor
	}
	exact, err := strconv.Atoi(bucket)
	return err == nil && n == exact
}

func matchLayout(rec *flag.Record, rule Rule, elementID string) bool {
	layout := strings.ToLower(rec.Layout)
	for _, synonym := range rule.synonymsFor(elementID) {
		if layout != "" && strings.Contains(layout, synonym) {
			return true
		}
		for _, element := range rec.Elements() {
			if strings.Contains(element, synonym) {
				return true
			}
		}
	}
	return false
}

func matchSymbol(rec *flag.Record, rule Rule, elementID string) bool {
	for _, suppressor := range rule.Suppressors[elementID] {
		if rec.HasElement(suppressor) {
			return false
		}
	}

	synonyms := rule.synonymsFor(elementID)
	excluded := rule.Exclusions[elementID]

	for _, element := range rec.Elements() {
		if containsAny(element, excluded) {
			continue
		}
		for _, synonym := range synonyms {
			if strings.Contains(element, synonym) || strings.Contains(synonym, element) {
				return true
			}
		}
	}
	return false
}

func matchElement(rec *flag.Record, elementID string) bool {
	needle := strings.ToLower(strings.TrimSpace(elementID))
	if needle == "" {
		return false
	}
	for _, element := range rec.Elements() {
		if strings.Contains(element, needle) || strings.Contains(needle, element) {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
