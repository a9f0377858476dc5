// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"strings"

	"github.com/taibuivan/flagdex/internal/core/color"
	"github.com/taibuivan/flagdex/internal/core/flag"
)

// # Pattern Schemas

// Schema ids understood by the pattern matcher.
const (
	SchemaVerticalTriband   = "vertical_triband"
	SchemaHorizontalTriband = "horizontal_triband"
	SchemaVerticalBicolor   = "vertical_bicolor"
	SchemaHorizontalBicolor = "horizontal_bicolor"
	SchemaDiagonalDivision  = "diagonal_division"
	SchemaCanton            = "canton"
	SchemaNordicCross       = "nordic_cross"
)

// schemaBands gives the number of positional bands of each schema. Layout-only
// schemas have zero bands.
var schemaBands = map[string]int{
	SchemaVerticalTriband:   3,
	SchemaHorizontalTriband: 3,
	SchemaVerticalBicolor:   2,
	SchemaHorizontalBicolor: 2,
	SchemaDiagonalDivision:  0,
	SchemaCanton:            0,
	SchemaNordicCross:       0,
}

// Schemas returns every known schema id.
func Schemas() []string {
	return []string{
		SchemaVerticalTriband, SchemaHorizontalTriband,
		SchemaVerticalBicolor, SchemaHorizontalBicolor,
		SchemaDiagonalDivision, SchemaCanton, SchemaNordicCross,
	}
}

// IsSchema reports whether id names a known schema.
func IsSchema(id string) bool {
	_, ok := schemaBands[id]
	return ok
}

// BandCount returns the number of color slots of a schema.
func BandCount(schemaID string) int {
	return schemaBands[schemaID]
}

// symbolVocabulary lists the elements that make a flag "symbol bearing".
var symbolVocabulary = []string{
	"coat_of_arms", "emblem", "seal", "crown", "shield",
	"eagle", "lion", "dragon", "bird", "snake",
	"sun", "star", "crescent", "moon", "constellation",
	"cross", "dharma_wheel", "chakra",
	"person", "human", "hand",
	"tree", "leaf", "wreath",
	"sword", "spear", "rifle", "machete",
	"temple", "castle", "map", "trident", "keys",
}

// # Pattern Filter

// PatternFilter selects flags by layout schema and band colors.
type PatternFilter struct {
	SchemaID      string   `json:"schema_id,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	RequireSymbol bool     `json:"require_symbol,omitempty"`
}

// Active reports whether a schema is selected.
func (p PatternFilter) Active() bool { return p.SchemaID != "" }

// IsWildcard reports whether a color slot imposes no constraint.
func IsWildcard(slot string) bool {
	switch strings.ToLower(strings.TrimSpace(slot)) {
	case "", "*", "any", "wildcard":
		return true
	}
	return false
}

/*
MatchesPattern reports whether rec fits the pattern filter.

Layout-only schemas test the layout tag alone. Banded schemas also compare each
concrete color slot with the band at the same position. A band the flag does not
have fails the match.
*/
func MatchesPattern(rec *flag.Record, p PatternFilter) bool {
	if !p.Active() {
		return true
	}
	if p.RequireSymbol && !HasSymbol(rec) {
		return false
	}

	schema := strings.ToLower(p.SchemaID)
	if !strings.Contains(strings.ToLower(rec.Layout), schema) {
		return false
	}

	n := BandCount(schema)
	if n == 0 {
		return true
	}

	bands := Bands(rec, schema)
	for i, slot := range p.Colors {
		if i >= n {
			break
		}
		if IsWildcard(slot) {
			continue
		}
		if i >= len(bands) || !color.Match(bands[i], slot) {
			return false
		}
	}
	return true
}

/*
Bands derives the positional band colors of rec for a schema.

Priority:
 1. The explicit band colors of the record.
 2. The colors of the attribute describing the layout.
 3. A triband with two distinct colors is read as A/B/A.
 4. A triband takes its first three colors, a bicolor its first two.
*/
func Bands(rec *flag.Record, schemaID string) []string {
	if len(rec.BandColors) > 0 {
		return rec.BandColors
	}

	for _, a := range rec.Attributes {
		if len(a.Colors) > 0 && strings.Contains(strings.ToLower(a.Element), schemaID) {
			return a.Colors
		}
	}

	n := BandCount(schemaID)
	if n == 3 {
		if distinct := distinctColors(rec.Colors); len(distinct) == 2 {
			return []string{distinct[0], distinct[1], distinct[0]}
		}
	}
	if len(rec.Colors) > n {
		return rec.Colors[:n]
	}
	return rec.Colors
}

// HasSymbol reports whether rec carries at least one symbol from the vocabulary.
func HasSymbol(rec *flag.Record) bool {
	for _, symbol := range symbolVocabulary {
		if rec.HasElement(symbol) {
			return true
		}
	}
	return false
}

func distinctColors(colors []string) []string {
	var out []string
	seen := make(map[string]bool, len(colors))
	for _, c := range colors {
		n := color.Normalize(c)
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, c)
	}
	return out
}
