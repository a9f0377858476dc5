// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package filter decides whether a flag record satisfies one user-selected filter.

Components:

  - ActiveFilter: a (category, element) pair whose kind is resolved when it is built.
  - Registry: the declarative table mapping each leaf category to its match rule.
  - Engine: evaluates a filter against a record, recursing through the taxonomy for
    category and subcategory filters.
  - PatternFilter: strict positional band matching for striped layouts.

Every evaluation is pure. Unknown categories or elements never fail, they only
fail to match.
*/
package filter

import (
	"encoding/json"
	"fmt"
	"strings"
)

// # Filter Kinds

// Kind tells the engine how to interpret a filter.
type Kind int

const (
	// KindLeaf filters name a leaf category and one of its elements.
	KindLeaf Kind = iota

	// KindCategory filters name a whole taxonomy category in the element slot.
	KindCategory

	// KindSubcategory filters name a taxonomy subcategory in the element slot.
	KindSubcategory
)

// Pseudo category ids that select taxonomy nodes rather than leaf values.
const (
	MainCategory = "main_category"
	Subcategory  = "subcategory"

	// Elements is the category used when a tag is clicked directly.
	Elements = "elements"
)

func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindSubcategory:
		return "subcategory"
	default:
		return "leaf"
	}
}

// # Active Filter

// ActiveFilter is one selected (category, element) pair.
type ActiveFilter struct {
	CategoryID string `json:"category"`
	ElementID  string `json:"element"`

	kind Kind
}

// New builds a filter and resolves its kind.
func New(categoryID, elementID string) ActiveFilter {
	return ActiveFilter{
		CategoryID: categoryID,
		ElementID:  elementID,
		kind:       resolveKind(categoryID),
	}
}

// Parse reads the "category:element" form used in query strings.
func Parse(raw string) (ActiveFilter, error) {
	category, element, ok := strings.Cut(raw, ":")
	category = strings.TrimSpace(category)
	element = strings.TrimSpace(element)
	if !ok || category == "" || element == "" {
		return ActiveFilter{}, fmt.Errorf("filter: %q is not of the form category:element", raw)
	}
	return New(category, element), nil
}

// Kind returns the resolved kind.
func (f ActiveFilter) Kind() Kind { return f.kind }

// Equal compares filters by pair.
func (f ActiveFilter) Equal(other ActiveFilter) bool {
	return f.CategoryID == other.CategoryID && f.ElementID == other.ElementID
}

func (f ActiveFilter) String() string {
	return f.CategoryID + ":" + f.ElementID
}

// UnmarshalJSON decodes the pair and resolves the kind again.
func (f *ActiveFilter) UnmarshalJSON(data []byte) error {
	var raw struct {
		CategoryID string `json:"category"`
		ElementID  string `json:"element"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = New(raw.CategoryID, raw.ElementID)
	return nil
}

// Contains reports whether filters already holds the pair of f.
func Contains(filters []ActiveFilter, f ActiveFilter) bool {
	for _, existing := range filters {
		if existing.Equal(f) {
			return true
		}
	}
	return false
}

func resolveKind(categoryID string) Kind {
	switch categoryID {
	case MainCategory:
		return KindCategory
	case Subcategory:
		return KindSubcategory
	default:
		return KindLeaf
	}
}
