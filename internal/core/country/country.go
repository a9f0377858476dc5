// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package country holds the per-country reference data consulted around the flag records.

Contents:

  - Display names in French and English.
  - The aspect ratio of each flag and its proportion bucket.
  - Population and area figures fetched from an external lookup, with a name alias
    table bridging the dataset naming and the lookup naming.

Names and ratios are bundled and read-only. Population and area start empty and are
filled in once by a [Refresher]; until then every figure reads as zero.
*/
package country

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// # Language

// Language is a display language of the catalog.
type Language string

const (
	French  Language = "fr"
	English Language = "en"
)

// DefaultLanguage is used when a caller does not pick one.
const DefaultLanguage = French

// ParseLanguage validates a language code. The empty string yields [DefaultLanguage].
func ParseLanguage(raw string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return DefaultLanguage, true
	case French:
		return French, true
	case English:
		return English, true
	}
	return "", false
}

// # Directory

// Entry is the bundled reference data of one country.
type Entry struct {
	FR    string `json:"fr"`
	EN    string `json:"en"`
	Ratio string `json:"ratio,omitempty"`
}

// Directory answers name, ratio and figure lookups by dataset country key.
type Directory struct {
	entries map[string]Entry
	stats   *Stats
}

// NewDirectory wraps entries. A nil stats gets an empty one.
func NewDirectory(entries map[string]Entry, stats *Stats) *Directory {
	if stats == nil {
		stats = NewStats()
	}
	return &Directory{entries: entries, stats: stats}
}

// LoadDirectory decodes the bundled JSON object keyed by country and checks every ratio.
func LoadDirectory(r io.Reader, stats *Stats) (*Directory, error) {
	var entries map[string]Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("country: decode directory: %w", err)
	}
	for key, entry := range entries {
		if entry.Ratio == "" {
			continue
		}
		if _, err := ParseRatio(entry.Ratio); err != nil {
			return nil, fmt.Errorf("country: %s: %w", key, err)
		}
	}
	return NewDirectory(entries, stats), nil
}

// LoadDirectoryFS opens name inside fsys and loads it with [LoadDirectory].
func LoadDirectoryFS(fsys fs.FS, name string, stats *Stats) (*Directory, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("country: open %s: %w", name, err)
	}
	defer file.Close()

	return LoadDirectory(file, stats)
}

// Name returns the display name of a country, falling back to the English name and
// then to the key itself.
func (d *Directory) Name(key string, lang Language) string {
	entry, ok := d.entries[key]
	if !ok {
		return key
	}
	if lang == French && entry.FR != "" {
		return entry.FR
	}
	if entry.EN != "" {
		return entry.EN
	}
	return key
}

// Has reports whether key has an entry.
func (d *Directory) Has(key string) bool {
	_, ok := d.entries[key]
	return ok
}

// Names returns both display names of a country.
func (d *Directory) Names(key string) Entry {
	entry, ok := d.entries[key]
	if !ok {
		return Entry{FR: key, EN: key}
	}
	if entry.EN == "" {
		entry.EN = key
	}
	if entry.FR == "" {
		entry.FR = entry.EN
	}
	return entry
}

// Ratio returns the height:width ratio of a flag, [DefaultRatio] when unknown.
func (d *Directory) Ratio(key string) Ratio {
	entry, ok := d.entries[key]
	if !ok || entry.Ratio == "" {
		return DefaultRatio
	}
	ratio, err := ParseRatio(entry.Ratio)
	if err != nil {
		return DefaultRatio
	}
	return ratio
}

// Bucket returns the proportion bucket of a flag.
func (d *Directory) Bucket(key string) string {
	return d.Ratio(key).Bucket()
}

// Population returns the population of a country, zero when unknown.
func (d *Directory) Population(key string) int64 {
	return d.stats.Get(key).Population
}

// Area returns the area of a country in square kilometers, zero when unknown.
func (d *Directory) Area(key string) float64 {
	return d.stats.Get(key).Area
}

// Stats exposes the figure store so it can be refreshed.
func (d *Directory) Stats() *Stats { return d.stats }
