// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	stdctx "context"
	"sync"

	"github.com/taibuivan/flagdex/internal/platform/apperr"
)

// # Repository Interface

// Repository persists preferences. FindByClientID returns apperr NOT_FOUND when
// nothing was saved.
type Repository interface {
	FindByClientID(context stdctx.Context, clientID string) (*Preference, error)
	Upsert(context stdctx.Context, pref *Preference) error
}

// # In-Memory Implementation

// MemoryRepository keeps preferences in process memory when no database is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	prefs map[string]Preference
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{prefs: make(map[string]Preference)}
}

// FindByClientID returns a copy of the stored settings.
func (repository *MemoryRepository) FindByClientID(_ stdctx.Context, clientID string) (*Preference, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	pref, ok := repository.prefs[clientID]
	if !ok {
		return nil, apperr.NotFound("Preferences")
	}
	return &pref, nil
}

// Upsert stores a copy of pref.
func (repository *MemoryRepository) Upsert(_ stdctx.Context, pref *Preference) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.prefs[pref.ClientID] = *pref
	return nil
}
