// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/data"
	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/session"
)

// newService wires a session service over the bundled data and an in-memory store.
func newService(t *testing.T) *session.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalogService, err := catalog.Open(data.FS(), country.NewStats(), logger)
	require.NoError(t, err)

	return session.NewService(session.NewMemoryStore(time.Hour), catalogService, logger)
}
