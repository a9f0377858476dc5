// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	stdctx "context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
	"github.com/taibuivan/flagdex/internal/core/query"
	"github.com/taibuivan/flagdex/internal/platform/apperr"
	"github.com/taibuivan/flagdex/internal/platform/validate"
	"github.com/taibuivan/flagdex/pkg/pointer"
	"github.com/taibuivan/flagdex/pkg/uuid"
)

const (
	maxFilters   = 64
	maxSearchLen = 100
)

// # Inputs

// Update holds the optional scalar fields of a PATCH. Nil fields are left alone.
type Update struct {
	Search   *string `json:"search"`
	Mode     *string `json:"mode"`
	Sort     *string `json:"sort"`
	Language *string `json:"language"`
}

// PatternInput replaces the pattern filter.
type PatternInput struct {
	Schema        string   `json:"schema"`
	Colors        []string `json:"colors"`
	RequireSymbol bool     `json:"require_symbol"`
}

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	State  *State `json:"session"`
	Active bool   `json:"active"`
}

// # Service Layer

// Service applies lifecycle rules to stored sessions.
type Service struct {
	store   Store
	catalog *catalog.Service
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a new [Service].
func NewService(store Store, catalog *catalog.Service, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Create starts a session in the given language. An empty language selects the default.
func (service *Service) Create(context stdctx.Context, lang string) (*State, error) {
	language, ok := country.ParseLanguage(lang)
	if !ok {
		return nil, validate.FieldErr("language", "Must be one of: fr, en")
	}

	state := NewState(uuid.New(), language, service.now().UTC())
	if err := service.save(context, state); err != nil {
		return nil, err
	}

	service.logger.Info("session_created", slog.String("session_id", state.ID))
	return state, nil
}

/*
Get loads a session.

Returns:
  - *State: The stored state
  - error: NOT_FOUND for malformed, unknown or expired ids
*/
func (service *Service) Get(context stdctx.Context, id string) (*State, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Session")
	}

	state, err := service.store.Get(context, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Session")
	}
	if err != nil {
		return nil, apperr.ServiceUnavailable("Session store unavailable", err)
	}
	return state, nil
}

/*
ToggleFilter adds or removes a (category, element) pair.

Description: The pair must name a node of the taxonomy. Pseudo categories select
a whole category, a whole subcategory, or any element of the tree.
*/
func (service *Service) ToggleFilter(context stdctx.Context, id string, f filter.ActiveFilter) (*ToggleResult, error) {
	f = filter.New(strings.TrimSpace(f.CategoryID), strings.TrimSpace(f.ElementID))
	if err := service.checkFilter(f); err != nil {
		return nil, err
	}

	state, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	active := state.Toggle(f)
	if active && len(state.Filters) > maxFilters {
		return nil, validate.FieldErr("filters", fmt.Sprintf("Must contain at most %d items", maxFilters))
	}

	if err := service.save(context, state); err != nil {
		return nil, err
	}
	return &ToggleResult{State: state, Active: active}, nil
}

// ClearFilters drops every filter and the pattern filter.
func (service *Service) ClearFilters(context stdctx.Context, id string) (*State, error) {
	state, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	state.ClearFilters()
	if err := service.save(context, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Update applies the non-nil fields of input after validating all of them.
func (service *Service) Update(context stdctx.Context, id string, input Update) (*State, error) {
	state, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	v := &validate.Validator{}

	search := strings.TrimSpace(pointer.Fallback(input.Search, state.Search))
	v.MaxLen("search", search, maxSearchLen)

	mode, ok := query.ParseColorMode(pointer.Fallback(input.Mode, string(state.Mode)))
	v.Custom("mode", !ok, "Must be one of: or, and, not")

	sortKey, ok := query.ParseSortKey(pointer.Fallback(input.Sort, string(state.Sort)))
	v.Custom("sort", !ok, "Unknown sort key")

	lang, ok := country.ParseLanguage(pointer.Fallback(input.Language, string(state.Language)))
	v.Custom("language", !ok, "Must be one of: fr, en")

	if err := v.Err(); err != nil {
		return nil, err
	}

	state.Search = search
	state.Mode = mode
	state.Sort = sortKey
	state.Language = lang

	if err := service.save(context, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetPattern replaces the pattern filter. An empty schema clears it.
func (service *Service) SetPattern(context stdctx.Context, id string, input PatternInput) (*State, error) {
	schema := strings.ToLower(strings.TrimSpace(input.Schema))

	v := &validate.Validator{}
	if schema != "" {
		v.Custom("schema", !filter.IsSchema(schema), "Must be one of: "+strings.Join(filter.Schemas(), ", "))
		v.MaxItems("colors", len(input.Colors), filter.BandCount(schema))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	state, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	state.SetPattern(schema, input.Colors, input.RequireSymbol)
	if err := service.save(context, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Delete ends a session. Deleting an unknown session is not an error.
func (service *Service) Delete(context stdctx.Context, id string) error {
	if !uuid.Valid(id) {
		return nil
	}
	if err := service.store.Delete(context, id); err != nil {
		return apperr.ServiceUnavailable("Session store unavailable", err)
	}
	return nil
}

// Explore runs the session's query through the catalog.
func (service *Service) Explore(context stdctx.Context, id string) (*State, *catalog.Exploration, error) {
	state, err := service.Get(context, id)
	if err != nil {
		return nil, nil, err
	}

	exploration, err := service.catalog.Explore(context, state.Params())
	if err != nil {
		return nil, nil, err
	}
	return state, exploration, nil
}

// Summaries renders records in the session's language.
func (service *Service) Summaries(records []*flag.Record, state *State) []catalog.FlagSummary {
	return service.catalog.Summaries(records, state.Language)
}

// # Helpers

func (service *Service) save(context stdctx.Context, state *State) error {
	state.Touch(service.now().UTC())
	if err := service.store.Save(context, state); err != nil {
		return apperr.ServiceUnavailable("Session store unavailable", err)
	}
	return nil
}

// checkFilter rejects pairs that name nothing in the taxonomy.
func (service *Service) checkFilter(f filter.ActiveFilter) error {
	v := &validate.Validator{}
	v.Required("category", f.CategoryID)
	v.Required("element", f.ElementID)
	if v.HasErrors() {
		return v.Err()
	}

	tree := service.catalog.Taxonomy()

	var known bool
	switch {
	case f.Kind() == filter.KindCategory:
		_, known = tree.Category(f.ElementID)
	case f.Kind() == filter.KindSubcategory:
		_, known = tree.CategoryOf(f.ElementID)
	case f.CategoryID == filter.Elements:
		// Clicked tags are flag attribute elements, most of which the tree never names
		known = true
	default:
		known = slices.Contains(tree.Pairs(), [2]string{f.CategoryID, f.ElementID})
	}

	if !known {
		return apperr.Unprocessable(fmt.Sprintf("Unknown filter %s", f))
	}
	return nil
}

// SetClock replaces the time source. Tests use it to control timestamps.
func (service *Service) SetClock(now func() time.Time) {
	service.now = now
}
