// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/flagdex/internal/platform/constants"
)

// RedisStore keeps each session as a JSON string under its own key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store whose keys expire ttl after the last save.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (store *RedisStore) key(id string) string {
	return constants.RedisPrefixSession + id
}

// Get decodes the state stored under id.
func (store *RedisStore) Get(context stdctx.Context, id string) (*State, error) {
	payload, err := store.client.Get(context, store.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: redis get: %w", err)
	}

	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("session: decode %s: %w", id, err)
	}
	return &state, nil
}

// Save writes state and resets its TTL.
func (store *RedisStore) Save(context stdctx.Context, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", state.ID, err)
	}
	if err := store.client.Set(context, store.key(state.ID), payload, store.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}

// Delete removes a session. Unknown ids are ignored.
func (store *RedisStore) Delete(context stdctx.Context, id string) error {
	if err := store.client.Del(context, store.key(id)).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}
