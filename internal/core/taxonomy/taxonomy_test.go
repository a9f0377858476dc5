// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/internal/core/taxonomy"
)

const validTree = `
categories:
  - id: colors
    label: {fr: Couleurs, en: Colors}
    subcategories:
      - id: primary_colors
        label: {fr: Primaires, en: Primary}
        elements:
          - {id: red, label: {fr: Rouge, en: Red}}
          - {id: blue, label: {fr: Bleu, en: Blue}}
      - id: neutral_colors
        label: {en: Neutral}
        elements:
          - {id: white, label: {en: White}}
  - id: animals
    label: {fr: Animaux, en: Animals}
    subcategories:
      - id: birds
        label: {fr: Oiseaux, en: Birds}
        elements:
          - {id: eagle, label: {fr: Aigle, en: Eagle}}
`

/*
TestLoad_Valid decodes a well formed tree and checks the navigator lookups.
*/
func TestLoad_Valid(t *testing.T) {
	tree, err := taxonomy.Load(strings.NewReader(validTree))
	require.NoError(t, err)

	assert.Equal(t, []string{"primary_colors", "neutral_colors"}, tree.SubcategoriesOf("colors"))
	assert.Equal(t, []string{"red", "blue"}, tree.ElementsOf("primary_colors"))

	parent, ok := tree.CategoryOf("birds")
	assert.True(t, ok)
	assert.Equal(t, "animals", parent)

	category, ok := tree.Category("animals")
	require.True(t, ok)
	assert.Equal(t, "Animaux", category.Label.Get("fr"))
	assert.Equal(t, "Animals", category.Label.Get("en"))

	assert.Len(t, tree.Pairs(), 4)
	assert.Equal(t, [2]string{"colors", "red"}, tree.Pairs()[0])
}

/*
TestNavigator_UnknownIDs returns empty results instead of failing.
*/
func TestNavigator_UnknownIDs(t *testing.T) {
	tree, err := taxonomy.Load(strings.NewReader(validTree))
	require.NoError(t, err)

	assert.Empty(t, tree.ElementsOf("no_such_subcategory"))
	assert.Empty(t, tree.SubcategoriesOf("no_such_category"))

	_, ok := tree.CategoryOf("no_such_subcategory")
	assert.False(t, ok)
	_, ok = tree.Category("no_such_category")
	assert.False(t, ok)
}

/*
TestLabel_Fallback uses English when the French label is missing.
*/
func TestLabel_Fallback(t *testing.T) {
	label := taxonomy.Label{EN: "Neutral"}
	assert.Equal(t, "Neutral", label.Get("fr"))
	assert.Equal(t, "Neutral", label.Get("de"))
}

/*
TestLoad_Invalid rejects malformed trees at load time.
*/
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty_document",
			input:   "categories: []",
			wantErr: "no categories",
		},
		{
			name: "unknown_field",
			input: `
categories:
  - id: colors
    label: {en: Colors}
    colour: red
`,
			wantErr: "decode",
		},
		{
			name: "duplicate_subcategory",
			input: `
categories:
  - id: a
    label: {en: A}
    subcategories:
      - {id: shared, label: {en: Shared}}
  - id: b
    label: {en: B}
    subcategories:
      - {id: shared, label: {en: Shared}}
`,
			wantErr: `subcategory "shared": already belongs to category "a"`,
		},
		{
			name: "duplicate_element_in_category",
			input: `
categories:
  - id: a
    label: {en: A}
    subcategories:
      - id: one
        label: {en: One}
        elements:
          - {id: x, label: {en: X}}
      - id: two
        label: {en: Two}
        elements:
          - {id: x, label: {en: X}}
`,
			wantErr: `element "x": listed in both "one" and "two"`,
		},
		{
			name: "missing_label_and_empty_id",
			input: `
categories:
  - id: a
    label: {fr: A}
    subcategories:
      - id: ""
        label: {en: Nameless}
`,
			wantErr: "missing english label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := taxonomy.Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

/*
TestNew_ReportsEveryProblem aggregates all violations into one error.
*/
func TestNew_ReportsEveryProblem(t *testing.T) {
	_, err := taxonomy.New([]taxonomy.Category{
		{ID: "a"},
		{ID: "a", Label: taxonomy.Label{EN: "A"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `category "a": missing english label`)
	assert.Contains(t, err.Error(), `category "a": duplicate id`)
}
