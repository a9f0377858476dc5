// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/flagdex/internal/core/color"
)

/*
TestMatch_Reflexive checks that every color, known or not, matches itself.
*/
func TestMatch_Reflexive(t *testing.T) {
	for _, c := range []string{"red", "maroon", "navy", "Sky Blue", "copper", "unobtainium"} {
		t.Run(c, func(t *testing.T) {
			assert.True(t, color.Match(c, c))
		})
	}
}

/*
TestMatch_Families covers the family table in both argument orders.
*/
func TestMatch_Families(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{"maroon_is_not_red", "maroon", "red", false},
		{"aquamarine_is_blue", "aquamarine", "blue", true},
		{"gold_is_yellow", "gold", "yellow", true},
		{"navy_is_blue", "navy", "blue", true},
		{"case_insensitive", "RED", "red", true},
		{"fuzzy_shade", "light_navy", "blue", true},
		{"hyphenated_shade", "sky-blue", "blue", true},
		{"green_is_not_blue", "green", "blue", false},
		{"unknown_only_itself", "unobtainium", "red", false},
		{"crimson_is_red", "crimson", "red", true},
		{"tangerine_is_not_brown", "tangerine", "brown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, color.Match(tt.a, tt.b))
			assert.Equal(t, tt.expected, color.Match(tt.b, tt.a))
		})
	}
}

/*
TestMatch_Empty ensures empty names never match anything.
*/
func TestMatch_Empty(t *testing.T) {
	assert.False(t, color.Match("", "red"))
	assert.False(t, color.Match("red", ""))
	assert.False(t, color.Match("", ""))
}

/*
TestFamily returns the canonical head first, then its members.
*/
func TestFamily(t *testing.T) {
	assert.Equal(t, []string{"maroon"}, color.Family("maroon"))
	assert.Equal(t, []string{"teal"}, color.Family("Teal"))

	blue := color.Family("blue")
	assert.Equal(t, "blue", blue[0])
	assert.Contains(t, blue, "aquamarine")
	assert.NotContains(t, color.Family("red"), "maroon")
}

/*
TestMatchAny checks the convenience helper over a selection.
*/
func TestMatchAny(t *testing.T) {
	assert.True(t, color.MatchAny("navy", []string{"red", "blue"}))
	assert.False(t, color.MatchAny("maroon", []string{"red", "white"}))
	assert.False(t, color.MatchAny("red", nil))
}
