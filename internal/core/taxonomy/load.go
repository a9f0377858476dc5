// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// # Loading

// Load decodes a YAML taxonomy from r and validates it.
func Load(r io.Reader) (*Taxonomy, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	t := &Taxonomy{}
	if err := decoder.Decode(t); err != nil {
		return nil, fmt.Errorf("taxonomy: decode: %w", err)
	}

	if err := Validate(t); err != nil {
		return nil, err
	}

	t.index()
	return t, nil
}

// LoadFS opens name inside fsys and loads it with [Load].
func LoadFS(fsys fs.FS, name string) (*Taxonomy, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: open %s: %w", name, err)
	}
	defer file.Close()

	return Load(file)
}

// New validates an in-memory tree and indexes it.
func New(categories []Category) (*Taxonomy, error) {
	t := &Taxonomy{Categories: categories}
	if err := Validate(t); err != nil {
		return nil, err
	}
	t.index()
	return t, nil
}

// # Validation

// Validate checks the structural invariants of the tree and reports every
// violation in a single error.
//
// # Rules
//
//   - Every node has a non-empty id and an English label.
//   - Category ids are unique.
//   - Subcategory ids are unique across the whole tree.
//   - Element ids are unique within their category.
func Validate(t *Taxonomy) error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(t.Categories) == 0 {
		addf("no categories")
	}

	categories := make(map[string]bool)
	subcategories := make(map[string]string)

	for ci, c := range t.Categories {
		if strings.TrimSpace(c.ID) == "" {
			addf("category #%d: empty id", ci)
			continue
		}
		if categories[c.ID] {
			addf("category %q: duplicate id", c.ID)
		}
		categories[c.ID] = true
		if c.Label.EN == "" {
			addf("category %q: missing english label", c.ID)
		}

		elements := make(map[string]string)
		for si, s := range c.Subcategories {
			if strings.TrimSpace(s.ID) == "" {
				addf("category %q subcategory #%d: empty id", c.ID, si)
				continue
			}
			if owner, seen := subcategories[s.ID]; seen {
				addf("subcategory %q: already belongs to category %q", s.ID, owner)
			}
			subcategories[s.ID] = c.ID
			if s.Label.EN == "" {
				addf("subcategory %q: missing english label", s.ID)
			}

			for ei, e := range s.Elements {
				if strings.TrimSpace(e.ID) == "" {
					addf("subcategory %q element #%d: empty id", s.ID, ei)
					continue
				}
				if owner, seen := elements[e.ID]; seen {
					addf("element %q: listed in both %q and %q", e.ID, owner, s.ID)
				}
				elements[e.ID] = s.ID
				if e.Label.EN == "" {
					addf("element %q: missing english label", e.ID)
				}
			}
		}
	}

	if len(problems) > 0 {
		return errors.New("taxonomy: invalid tree: " + strings.Join(problems, "; "))
	}
	return nil
}
