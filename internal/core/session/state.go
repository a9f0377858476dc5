// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session keeps the exploration state of one visitor between requests.

A session holds everything a query needs: the active filters, the search text, the
color mode, the pattern filter, the sort key and the display language. Every change
goes through a [State] method so the lifecycle rules hold in one place:

  - Toggling a filter adds it when absent and removes every copy when present.
  - Clearing the filters also resets the pattern filter.
  - Clearing the pattern schema resets its colors.
  - Choosing a schema resizes the color slots to its band count.

States are stored as JSON by a [Store] and expire after a period of inactivity.
*/
package session

import (
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/query"
)

// # Core Entity

// State is the persisted exploration state of one session.
type State struct {
	ID        string                `json:"id"`
	Filters   []filter.ActiveFilter `json:"filters"`
	Search    string                `json:"search"`
	Mode      query.ColorMode       `json:"mode"`
	Pattern   filter.PatternFilter  `json:"pattern"`
	Sort      query.SortKey         `json:"sort"`
	Language  country.Language      `json:"language"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// NewState returns a fresh state with the default mode, sort and language.
func NewState(id string, lang country.Language, now time.Time) *State {
	if lang == "" {
		lang = country.DefaultLanguage
	}
	return &State{
		ID:        id,
		Filters:   []filter.ActiveFilter{},
		Mode:      query.ModeOr,
		Sort:      query.SortNameAsc,
		Language:  lang,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Params copies the state into query parameters.
func (s *State) Params() query.Params {
	return query.Params{
		Filters: slices.Clone(s.Filters),
		Search:  s.Search,
		Mode:    s.Mode,
		Pattern: filter.PatternFilter{
			SchemaID:      s.Pattern.SchemaID,
			Colors:        slices.Clone(s.Pattern.Colors),
			RequireSymbol: s.Pattern.RequireSymbol,
		},
		Sort:     s.Sort,
		Language: s.Language,
	}
}

// # Mutators

// Toggle adds f when it is not active and removes every copy of it otherwise.
// It reports whether f is active afterwards.
func (s *State) Toggle(f filter.ActiveFilter) bool {
	if filter.Contains(s.Filters, f) {
		s.Filters = slices.DeleteFunc(s.Filters, f.Equal)
		return false
	}
	s.Filters = append(s.Filters, f)
	return true
}

// ClearFilters drops every active filter and resets the pattern filter.
func (s *State) ClearFilters() {
	s.Filters = []filter.ActiveFilter{}
	s.Pattern = filter.PatternFilter{}
}

/*
SetPattern replaces the pattern filter.

An empty schema resets the whole pattern. Otherwise colors are resized to the
schema's band count: missing slots become wildcards and extra slots are dropped.
*/
func (s *State) SetPattern(schemaID string, colors []string, requireSymbol bool) {
	schemaID = strings.ToLower(strings.TrimSpace(schemaID))
	if schemaID == "" {
		s.Pattern = filter.PatternFilter{}
		return
	}

	slots := make([]string, filter.BandCount(schemaID))
	for i := range slots {
		if i < len(colors) && !filter.IsWildcard(colors[i]) {
			slots[i] = strings.TrimSpace(colors[i])
		}
	}

	s.Pattern = filter.PatternFilter{
		SchemaID:      schemaID,
		Colors:        slots,
		RequireSymbol: requireSymbol,
	}
}

// Touch records a modification time.
func (s *State) Touch(now time.Time) {
	s.UpdatedAt = now
}
