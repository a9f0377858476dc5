// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package color canonicalizes flag color names into match-equivalence families.

Flag data names the same hue in many ways ("navy", "azure", "sky_blue"). A filter on
"blue" must find all of them, so matching goes through a fixed table of families:

  - Exact: a case-insensitive exact match always succeeds.
  - Family: either color belongs to the other's family.
  - Fuzzy: either color contains a member of the other's family as a substring.

"maroon" is deliberately kept out of the red family and forms its own singleton family.
"gold" and "yellow" include each other. Unknown colors match only themselves.
*/
package color

import "strings"

// # Family Table

// families maps a canonical color to the shade names it absorbs.
var families = map[string][]string{
	"red":    {"crimson", "scarlet", "vermilion", "carmine", "dark_red", "ruby", "cardinal"},
	"maroon": {},
	"blue":   {"navy", "azure", "light_blue", "aquamarine", "turquoise", "teal", "sky_blue", "cobalt", "indigo", "dark_blue", "royal_blue", "ultramarine"},
	"green":  {"dark_green", "light_green", "emerald", "olive", "lime", "forest_green", "jade"},
	"yellow": {"gold", "golden", "amber", "saffron", "lemon"},
	"gold":   {"yellow", "golden", "amber"},
	"orange": {"saffron", "amber", "tangerine", "dark_orange"},
	"white":  {"silver", "ivory", "cream"},
	"black":  {"jet", "charcoal"},
	"brown":  {"khaki", "bronze", "copper", "chestnut", "ochre"},
	"purple": {"violet", "magenta", "lilac", "mauve"},
	"grey":   {"gray", "silver", "ash"},
}

// # Matching

// Match reports whether an observed flag color satisfies an expected filter color.
func Match(observed, expected string) bool {
	o := Normalize(observed)
	e := Normalize(expected)
	if o == "" || e == "" {
		return false
	}

	// Exact match always wins
	if o == e {
		return true
	}

	// Family membership, both directions
	if inFamily(e, o) || inFamily(o, e) {
		return true
	}

	// Substring containment against the members, both directions
	return fuzzyFamily(e, o) || fuzzyFamily(o, e)
}

// MatchAny reports whether observed matches at least one of the expected colors.
func MatchAny(observed string, expected []string) bool {
	for _, e := range expected {
		if Match(observed, e) {
			return true
		}
	}
	return false
}

// Family returns the canonical color followed by its members, or just the
// normalized color when it heads no family.
func Family(name string) []string {
	n := Normalize(name)
	members, ok := families[n]
	if !ok {
		return []string{n}
	}
	out := make([]string, 0, len(members)+1)
	out = append(out, n)
	return append(out, members...)
}

// Normalize lowercases a color name and joins its words with underscores.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(n)
}

// inFamily reports whether member is listed in the family headed by head.
func inFamily(head, member string) bool {
	for _, m := range families[head] {
		if m == member {
			return true
		}
	}
	return false
}

// fuzzyFamily reports whether candidate contains the head or one of its members.
func fuzzyFamily(head, candidate string) bool {
	members, ok := families[head]
	if !ok {
		return false
	}
	if strings.Contains(candidate, head) {
		return true
	}
	for _, m := range members {
		if strings.Contains(candidate, m) {
			return true
		}
	}
	return false
}
