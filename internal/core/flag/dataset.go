// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flag

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/taibuivan/flagdex/pkg/slug"
)

// Dataset is the read-only, key-ordered collection of flag records.
type Dataset struct {
	records []*Record
	byKey   map[string]*Record
	bySlug  map[string]*Record
}

// Load decodes a JSON object keyed by country name.
func Load(r io.Reader) (*Dataset, error) {
	var raw map[string]Record
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("flag: decode dataset: %w", err)
	}

	records := make([]*Record, 0, len(raw))
	for key, rec := range raw {
		rec.CountryKey = key
		records = append(records, &rec)
	}
	return NewDataset(records)
}

// LoadFS opens name inside fsys and loads it with [Load].
func LoadFS(fsys fs.FS, name string) (*Dataset, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("flag: open %s: %w", name, err)
	}
	defer file.Close()

	return Load(file)
}

/*
NewDataset validates and indexes records.

Slugs are derived from the country key when missing. Records are sorted by country
key so iteration order is deterministic.

Returns:
  - *Dataset: The indexed dataset
  - error: Every record problem found, joined
*/
func NewDataset(records []*Record) (*Dataset, error) {
	d := &Dataset{
		records: make([]*Record, 0, len(records)),
		byKey:   make(map[string]*Record, len(records)),
		bySlug:  make(map[string]*Record, len(records)),
	}

	var errs []error
	for _, rec := range records {
		if strings.TrimSpace(rec.CountryKey) == "" {
			errs = append(errs, errors.New("flag: record with empty country key"))
			continue
		}
		if rec.ColorCount < 0 {
			errs = append(errs, fmt.Errorf("flag: %s: negative color_count", rec.CountryKey))
		}
		if _, dup := d.byKey[rec.CountryKey]; dup {
			errs = append(errs, fmt.Errorf("flag: %s: duplicate country key", rec.CountryKey))
			continue
		}
		if rec.Slug == "" {
			rec.Slug = slug.From(rec.CountryKey)
		}
		if other, dup := d.bySlug[rec.Slug]; dup {
			errs = append(errs, fmt.Errorf("flag: %s: slug %q already used by %s", rec.CountryKey, rec.Slug, other.CountryKey))
			continue
		}

		rec.extract()
		d.records = append(d.records, rec)
		d.byKey[rec.CountryKey] = rec
		d.bySlug[rec.Slug] = rec
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.Slice(d.records, func(i, j int) bool {
		return d.records[i].CountryKey < d.records[j].CountryKey
	})
	return d, nil
}

// All returns the records in country key order. The slice must not be modified.
func (d *Dataset) All() []*Record { return d.records }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Get looks a record up by country key.
func (d *Dataset) Get(key string) (*Record, bool) {
	rec, ok := d.byKey[key]
	return rec, ok
}

// BySlug looks a record up by its URL slug.
func (d *Dataset) BySlug(s string) (*Record, bool) {
	rec, ok := d.bySlug[s]
	return rec, ok
}

// Keys returns every country key in order.
func (d *Dataset) Keys() []string {
	keys := make([]string, len(d.records))
	for i, rec := range d.records {
		keys[i] = rec.CountryKey
	}
	return keys
}
