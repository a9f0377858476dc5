// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"strings"
	"unicode"

	"github.com/taibuivan/flagdex/internal/core/color"
	"github.com/taibuivan/flagdex/internal/core/flag"
)

// keywordFamily ties bilingual search terms to the flag elements or colors they mean.
// Terms are stored folded (lower case, no accents).
type keywordFamily struct {
	terms    []string
	elements []string
	colors   []string
}

var keywordFamilies = []keywordFamily{
	{terms: []string{"star", "stars", "etoile", "etoiles"}, elements: []string{"single_star", "multiple_stars", "constellation", "stars_arc", "stars_circle", "star"}},
	{terms: []string{"sun", "soleil"}, elements: []string{"sun"}},
	{terms: []string{"moon", "lune", "crescent", "croissant"}, elements: []string{"moon", "crescent"}},
	{terms: []string{"eagle", "aigle"}, elements: []string{"eagle"}},
	{terms: []string{"bird", "birds", "oiseau", "oiseaux"}, elements: []string{"eagle", "bird", "condor", "frigatebird"}},
	{terms: []string{"lion", "lions"}, elements: []string{"lion"}},
	{terms: []string{"dragon"}, elements: []string{"dragon"}},
	{terms: []string{"tree", "arbre", "leaf", "feuille"}, elements: []string{"tree", "leaf", "palm", "cedar"}},
	{terms: []string{"cross", "croix"}, elements: []string{"cross", "saltire"}},
	{terms: []string{"crown", "couronne"}, elements: []string{"crown"}},
	{terms: []string{"arms", "armoiries", "blason"}, elements: []string{"coat_of_arms"}},
	{terms: []string{"emblem", "embleme", "seal", "sceau"}, elements: []string{"emblem", "seal"}},
	{terms: []string{"weapon", "weapons", "arme", "armes", "sword", "epee"}, elements: []string{"sword", "spear", "rifle", "machete", "kukri"}},
	{terms: []string{"shield", "bouclier"}, elements: []string{"shield"}},
	{terms: []string{"ship", "boat", "bateau", "navire"}, elements: []string{"ship", "boat", "canoe", "dhow"}},
	{terms: []string{"map", "carte"}, elements: []string{"island_map", "country_map"}},
	{terms: []string{"temple", "building", "batiment"}, elements: []string{"temple", "castle", "tower"}},
	{terms: []string{"motto", "devise", "text", "texte", "inscription"}, elements: []string{"motto", "inscription", "religious_text"}},
	{terms: []string{"wheel", "roue"}, elements: []string{"wheel", "chakra"}},
	{terms: []string{"red", "rouge"}, colors: []string{"red"}},
	{terms: []string{"blue", "bleu", "bleue"}, colors: []string{"blue"}},
	{terms: []string{"green", "vert", "verte"}, colors: []string{"green"}},
	{terms: []string{"yellow", "jaune"}, colors: []string{"yellow"}},
	{terms: []string{"white", "blanc", "blanche"}, colors: []string{"white"}},
	{terms: []string{"black", "noir", "noire"}, colors: []string{"black"}},
	{terms: []string{"orange"}, colors: []string{"orange"}},
	{terms: []string{"gold", "dore", "doree"}, colors: []string{"gold"}},
	{terms: []string{"maroon", "bordeaux"}, colors: []string{"maroon"}},
	{terms: []string{"purple", "violet"}, colors: []string{"purple"}},
	{terms: []string{"brown", "brun", "marron"}, colors: []string{"brown"}},
}

// minKeywordPrefix is the shortest token that selects the terms it prefixes. Shorter
// tokens are usually the start of a country name ("gre", "cro").
const minKeywordPrefix = 5

// triggers reports whether a folded search token selects the family. Tokens of
// [minKeywordPrefix] letters or more also select terms they prefix, so "etoil"
// already means "etoile".
func (family keywordFamily) triggers(token string) bool {
	for _, term := range family.terms {
		if token == term {
			return true
		}
		if len(token) >= minKeywordPrefix && strings.HasPrefix(term, token) {
			return true
		}
	}
	return false
}

func (family keywordFamily) matches(rec *flag.Record) bool {
	for _, element := range family.elements {
		if rec.HasElement(element) {
			return true
		}
	}
	for _, expected := range family.colors {
		for _, observed := range rec.Colors {
			if color.Match(observed, expected) {
				return true
			}
		}
	}
	return false
}

// keywordQuery is the parsed keyword side of a search string.
type keywordQuery [][]keywordFamily

// parseKeywords groups the families triggered by each token. Tokens that trigger
// nothing are dropped.
func parseKeywords(folded string) keywordQuery {
	tokens := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var q keywordQuery
	for _, token := range tokens {
		var triggered []keywordFamily
		for _, family := range keywordFamilies {
			if family.triggers(token) {
				triggered = append(triggered, family)
			}
		}
		if len(triggered) > 0 {
			q = append(q, triggered)
		}
	}
	return q
}

// matches requires every keyword token to be satisfied by one of its families.
func (q keywordQuery) matches(rec *flag.Record) bool {
	if len(q) == 0 {
		return false
	}
	for _, families := range q {
		satisfied := false
		for _, family := range families {
			if family.matches(rec) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
