// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/data"
	"github.com/taibuivan/flagdex/internal/core/preference"
	"github.com/taibuivan/flagdex/internal/platform/apperr"
	"github.com/taibuivan/flagdex/internal/platform/migration"
	"github.com/taibuivan/flagdex/internal/platform/postgres"
	"github.com/taibuivan/flagdex/pkg/uuid"
)

/*
TestPostgresRepository migrates a real database and upserts twice. It is skipped
unless FLAGDEX_TEST_DATABASE_URL is set.
*/
func TestPostgresRepository(t *testing.T) {
	dsn := os.Getenv("FLAGDEX_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("FLAGDEX_TEST_DATABASE_URL not set")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migration.RunUpFS(dsn, data.FS(), data.MigrationsDir, logger))

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repository := preference.NewPostgresRepository(pool)
	clientID := uuid.New()

	_, err = repository.FindByClientID(ctx, clientID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	saved := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	pref := &preference.Preference{ClientID: clientID, Zoom: 90, Theme: "dark", Language: "en", UpdatedAt: saved}
	require.NoError(t, repository.Upsert(ctx, pref))

	pref.Zoom = 110
	require.NoError(t, repository.Upsert(ctx, pref))

	loaded, err := repository.FindByClientID(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, 110, loaded.Zoom)
	assert.Equal(t, "dark", loaded.Theme)
	assert.True(t, saved.Equal(loaded.UpdatedAt))
}
