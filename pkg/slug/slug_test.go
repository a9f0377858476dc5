// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/flagdex/pkg/slug"
)

/*
TestFrom verifies slug generation for country names with accents and punctuation.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "France", "france"},
		{"spaces", "United Kingdom", "united-kingdom"},
		{"accents_and_apostrophe", "Côte d'Ivoire", "cote-d-ivoire"},
		{"tilde", "São Tomé and Príncipe", "sao-tome-and-principe"},
		{"trailing_punctuation", "  Vatican City!  ", "vatican-city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFold verifies that folding removes accents and case but keeps separators.
*/
func TestFold(t *testing.T) {
	assert.Equal(t, "etoile", slug.Fold("Étoile"))
	assert.Equal(t, "etoile", slug.Fold("ÉTOILE"))
	assert.Equal(t, "cote d'ivoire", slug.Fold(" Côte d'Ivoire "))
	assert.Equal(t, slug.Fold("épée"), slug.Fold("EPEE"))
}
