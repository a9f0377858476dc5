// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package taxonomy defines the fixed three-level classification tree used to group
filterable flag attributes.

Structure:

  - Category: a filter family (continents, colors, animals...). Its id is also the
    category id carried by leaf filters.
  - Subcategory: a UI grouping inside a category. Ids are unique across the tree.
  - Element: a filterable value. Ids are unique within their category.

Every node carries bilingual labels. The tree is decoded and validated once at load;
a malformed tree is rejected before any query runs. After load it is read-only.
*/
package taxonomy

// # Core Entities

// Label holds the bilingual display name of a node.
type Label struct {
	FR string `json:"fr" yaml:"fr"`
	EN string `json:"en" yaml:"en"`
}

// Get returns the label for lang, falling back to English.
func (l Label) Get(lang string) string {
	if lang == "fr" && l.FR != "" {
		return l.FR
	}
	return l.EN
}

// Element is a leaf value that can be turned into a filter.
type Element struct {
	ID    string `json:"id" yaml:"id"`
	Label Label  `json:"label" yaml:"label"`
}

// Subcategory groups the elements of a category.
type Subcategory struct {
	ID       string    `json:"id" yaml:"id"`
	Label    Label     `json:"label" yaml:"label"`
	Elements []Element `json:"elements" yaml:"elements"`
}

// Category is the top level of the tree.
type Category struct {
	ID            string        `json:"id" yaml:"id"`
	Label         Label         `json:"label" yaml:"label"`
	Subcategories []Subcategory `json:"subcategories" yaml:"subcategories"`
}

// Taxonomy is the validated tree plus its lookup indexes.
type Taxonomy struct {
	Categories []Category `json:"categories" yaml:"categories"`

	subcategoryElements map[string][]string
	categorySubs        map[string][]string
	subcategoryParent   map[string]string
}

// # Navigation

// ElementsOf returns the element ids of a subcategory, or nil for an unknown id.
func (t *Taxonomy) ElementsOf(subcategoryID string) []string {
	return t.subcategoryElements[subcategoryID]
}

// SubcategoriesOf returns the subcategory ids of a category, or nil for an unknown id.
func (t *Taxonomy) SubcategoriesOf(categoryID string) []string {
	return t.categorySubs[categoryID]
}

// CategoryOf returns the category owning a subcategory.
func (t *Taxonomy) CategoryOf(subcategoryID string) (string, bool) {
	id, ok := t.subcategoryParent[subcategoryID]
	return id, ok
}

// Category looks up a category by id.
func (t *Taxonomy) Category(id string) (*Category, bool) {
	for i := range t.Categories {
		if t.Categories[i].ID == id {
			return &t.Categories[i], true
		}
	}
	return nil, false
}

// Pairs returns every (category, element) pair of the tree in declaration order.
func (t *Taxonomy) Pairs() [][2]string {
	var pairs [][2]string
	for _, c := range t.Categories {
		for _, s := range c.Subcategories {
			for _, e := range s.Elements {
				pairs = append(pairs, [2]string{c.ID, e.ID})
			}
		}
	}
	return pairs
}

// index builds the lookup maps. It assumes the tree has been validated.
func (t *Taxonomy) index() {
	t.subcategoryElements = make(map[string][]string)
	t.categorySubs = make(map[string][]string)
	t.subcategoryParent = make(map[string]string)

	for _, c := range t.Categories {
		subs := make([]string, 0, len(c.Subcategories))
		for _, s := range c.Subcategories {
			subs = append(subs, s.ID)
			t.subcategoryParent[s.ID] = c.ID

			elements := make([]string, 0, len(s.Elements))
			for _, e := range s.Elements {
				elements = append(elements, e.ID)
			}
			t.subcategoryElements[s.ID] = elements
		}
		t.categorySubs[c.ID] = subs
	}
}
