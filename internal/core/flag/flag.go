// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package flag models the static per-country flag records the catalog queries.

A [Record] describes one national flag: its palette, its layout tag, optional
positional band colors and the symbolic attributes drawn on it. Records are decoded
once from bundled data into a [Dataset] and never mutated afterwards, so they can be
shared freely between goroutines.
*/
package flag

import (
	"strings"

	"github.com/taibuivan/flagdex/pkg/slice"
)

// # Core Entities

// Attribute is one symbolic element drawn on a flag.
type Attribute struct {
	Element     string   `json:"element"`
	Type        string   `json:"type,omitempty"`
	Color       string   `json:"color,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Count       *int     `json:"count,omitempty"`
	Includes    []string `json:"includes,omitempty"`
	Text        string   `json:"text,omitempty"`
	Translation string   `json:"translation,omitempty"`
}

// CountOr returns the explicit count of the attribute or fallback when it has none.
func (a Attribute) CountOr(fallback int) int {
	if a.Count == nil {
		return fallback
	}
	return *a.Count
}

// Record is the description of one country's flag.
//
// ColorCount is authored independently from Colors and may disagree with its length.
// Count based filters read ColorCount.
type Record struct {
	CountryKey string      `json:"country_key"`
	Slug       string      `json:"slug"`
	Continent  string      `json:"continent"`
	Colors     []string    `json:"colors"`
	ColorCount int         `json:"color_count"`
	Layout     string      `json:"layout"`
	BandColors []string    `json:"band_colors,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`

	elements []string
}

// Elements returns the lower-cased identifiers of every attribute element and every
// element they include, in declaration order.
func (r *Record) Elements() []string {
	return r.elements
}

// HasElement reports whether any extracted element contains needle.
func (r *Record) HasElement(needle string) bool {
	needle = strings.ToLower(needle)
	for _, e := range r.elements {
		if strings.Contains(e, needle) {
			return true
		}
	}
	return false
}

// Mottos returns the inscription texts and their translations.
func (r *Record) Mottos() []string {
	var out []string
	for _, a := range r.Attributes {
		if a.Text != "" {
			out = append(out, a.Text)
		}
		if a.Translation != "" {
			out = append(out, a.Translation)
		}
	}
	return out
}

// extract computes the element list once, at load. An element listed twice is kept once.
func (r *Record) extract() {
	r.elements = r.elements[:0]
	for _, a := range r.Attributes {
		if e := strings.ToLower(strings.TrimSpace(a.Element)); e != "" {
			r.elements = append(r.elements, e)
		}
		for _, inc := range a.Includes {
			if e := strings.ToLower(strings.TrimSpace(inc)); e != "" {
				r.elements = append(r.elements, e)
			}
		}
	}
	r.elements = slice.Unique(r.elements)
}
