// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"strings"

	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
)

// # Color Mode

// ColorMode tells how selected palette colors combine.
type ColorMode string

const (
	// ModeOr keeps flags having any selected color.
	ModeOr ColorMode = "or"

	// ModeAnd keeps flags whose whole palette lies inside the selection. A flag with
	// an extra color is dropped even when it has every selected color.
	ModeAnd ColorMode = "and"

	// ModeNot drops flags having any selected color.
	ModeNot ColorMode = "not"
)

// ParseColorMode validates a mode. The empty string yields [ModeOr].
func ParseColorMode(raw string) (ColorMode, bool) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return ModeOr, true
	case ModeOr, ModeAnd, ModeNot:
		return mode, true
	}
	return "", false
}

// # Sort Key

// SortKey selects the result order.
type SortKey string

const (
	SortNameAsc        SortKey = "name_asc"
	SortNameDesc       SortKey = "name_desc"
	SortPopulationAsc  SortKey = "population_asc"
	SortPopulationDesc SortKey = "population_desc"
	SortAreaAsc        SortKey = "area_asc"
	SortAreaDesc       SortKey = "area_desc"
)

// SortKeys lists every accepted key.
var SortKeys = []SortKey{
	SortNameAsc, SortNameDesc,
	SortPopulationAsc, SortPopulationDesc,
	SortAreaAsc, SortAreaDesc,
}

// ParseSortKey validates a key. The empty string yields [SortNameAsc].
func ParseSortKey(raw string) (SortKey, bool) {
	key := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	if key == "" {
		return SortNameAsc, true
	}
	for _, known := range SortKeys {
		if key == known {
			return key, true
		}
	}
	return "", false
}

// # Parameters

// Params is the complete session state of one query. The engine never keeps it.
type Params struct {
	Filters  []filter.ActiveFilter
	Search   string
	Mode     ColorMode
	Pattern  filter.PatternFilter
	Sort     SortKey
	Language country.Language
}
