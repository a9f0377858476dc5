// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"sync"
	"time"
)

// Figures are the population and area of one country.
type Figures struct {
	Population int64   `json:"population"`
	Area       float64 `json:"area"`
}

// Stats is the concurrency-safe store of country figures. The zero figures are
// returned for every country until the store is filled.
type Stats struct {
	mu        sync.RWMutex
	figures   map[string]Figures
	updatedAt time.Time
}

// NewStats returns an empty store.
func NewStats() *Stats {
	return &Stats{figures: make(map[string]Figures)}
}

// Get returns the figures of a country.
func (s *Stats) Get(key string) Figures {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.figures[key]
}

// Replace swaps in a complete set of figures.
func (s *Stats) Replace(figures map[string]Figures) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.figures = figures
	s.updatedAt = time.Now()
}

// Len returns the number of countries with figures.
func (s *Stats) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.figures)
}

// UpdatedAt returns when the figures were last replaced, zero if never.
func (s *Stats) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
