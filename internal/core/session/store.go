// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by stores for unknown or expired sessions.
var ErrNotFound = errors.New("session: not found")

// # Repository Interface

// Store persists session states. Saving refreshes the expiry.
type Store interface {
	Get(context stdctx.Context, id string) (*State, error)
	Save(context stdctx.Context, state *State) error
	Delete(context stdctx.Context, id string) error
}

// # In-Memory Implementation

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. It is used when Redis is not
// configured and in tests. States are stored encoded so callers never share them.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an empty store whose entries live for ttl after each save.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get decodes the state stored under id.
func (store *MemoryStore) Get(_ stdctx.Context, id string) (*State, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, ok := store.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if store.now().After(entry.expiresAt) {
		delete(store.entries, id)
		return nil, ErrNotFound
	}

	var state State
	if err := json.Unmarshal(entry.payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save encodes state and resets its expiry.
func (store *MemoryStore) Save(_ stdctx.Context, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries[state.ID] = memoryEntry{payload: payload, expiresAt: store.now().Add(store.ttl)}
	return nil
}

// Delete removes a session. Unknown ids are ignored.
func (store *MemoryStore) Delete(_ stdctx.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.entries, id)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (store *MemoryStore) Sweep() int {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.now()
	removed := 0
	for id, entry := range store.entries {
		if now.After(entry.expiresAt) {
			delete(store.entries, id)
			removed++
		}
	}
	return removed
}

// SetClock replaces the time source. Tests use it to expire entries.
func (store *MemoryStore) SetClock(now func() time.Time) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.now = now
}
