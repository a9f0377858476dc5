// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/internal/core/country"
)

/*
TestClient_FetchAll decodes the bulk response keyed by common name.
*/
func TestClient_FetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/all", r.URL.Path)
		assert.Equal(t, "name,population,area", r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"name": {"common": "France", "official": "French Republic"}, "population": 67391582, "area": 551695},
			{"name": {"common": "Türkiye"}, "population": 84339067, "area": 783562},
			{"name": {"common": ""}, "population": 1}
		]`)
	}))
	defer server.Close()

	client := country.NewClient(server.URL+"/v3.1/", time.Second)
	figures, err := client.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, figures, 2)
	assert.Equal(t, int64(67391582), figures["France"].Population)
	assert.InDelta(t, 783562, figures["Türkiye"].Area, 0.001)
}

/*
TestClient_FetchAll_Status reports non-200 responses.
*/
func TestClient_FetchAll_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := country.NewClient(server.URL, 0).FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

type fakeSource struct {
	figures map[string]country.Figures
	err     error
	calls   int
}

func (f *fakeSource) FetchAll(context.Context) (map[string]country.Figures, error) {
	f.calls++
	return f.figures, f.err
}

type memoryCache struct {
	figures map[string]country.Figures
	saved   bool
}

func (m *memoryCache) Load(context.Context) (map[string]country.Figures, error) {
	if m.figures == nil {
		return nil, country.ErrCacheMiss
	}
	return m.figures, nil
}

func (m *memoryCache) Save(_ context.Context, figures map[string]country.Figures, _ time.Duration) error {
	m.figures = figures
	m.saved = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestRefresher covers the cache-first refresh flow.
*/
func TestRefresher(t *testing.T) {
	keys := []string{"France", "Turkey"}

	t.Run("miss_fetches_and_saves", func(t *testing.T) {
		source := &fakeSource{figures: map[string]country.Figures{"France": {Population: 1}, "Türkiye": {Population: 2}}}
		cache := &memoryCache{}
		stats := country.NewStats()

		err := country.NewRefresher(source, cache, stats, keys, time.Hour, discardLogger()).Refresh(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, source.calls)
		assert.True(t, cache.saved)
		assert.Equal(t, int64(2), stats.Get("Turkey").Population)
	})

	t.Run("hit_skips_source", func(t *testing.T) {
		source := &fakeSource{}
		cache := &memoryCache{figures: map[string]country.Figures{"France": {Population: 9}}}
		stats := country.NewStats()

		err := country.NewRefresher(source, cache, stats, keys, time.Hour, discardLogger()).Refresh(context.Background())
		require.NoError(t, err)

		assert.Zero(t, source.calls)
		assert.Equal(t, int64(9), stats.Get("France").Population)
	})

	t.Run("source_failure_keeps_zero", func(t *testing.T) {
		source := &fakeSource{err: errors.New("offline")}
		stats := country.NewStats()

		err := country.NewRefresher(source, nil, stats, keys, time.Hour, discardLogger()).Refresh(context.Background())
		require.Error(t, err)

		assert.Zero(t, stats.Len())
		assert.Zero(t, stats.Get("France").Population)
	})
}
