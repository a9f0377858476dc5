// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	stdctx "context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/flagdex/internal/platform/database/schema"
	"github.com/taibuivan/flagdex/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation for client settings.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
FindByClientID retrieves the settings row of a client.

Parameters:
  - context: context.Context
  - clientID: string

Returns:
  - *Preference: Hydrated settings
  - error: apperr.NotFound or a classified database failure
*/
func (repository *PostgresRepository) FindByClientID(context stdctx.Context, clientID string) (*Preference, error) {
	table := schema.CorePreferences
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		strings.Join(table.Columns(), ", "),
		table.Table,
		table.ClientID,
	)

	pref := &Preference{}
	err := repository.pool.QueryRow(context, query, clientID).Scan(
		&pref.ClientID,
		&pref.Zoom,
		&pref.Theme,
		&pref.Language,
		&pref.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Preferences", "find")
	}
	return pref, nil
}

/*
Upsert saves a client's settings using an ON CONFLICT UPDATE strategy.

Parameters:
  - context: context.Context
  - pref: *Preference

Returns:
  - error: A classified database failure
*/
func (repository *PostgresRepository) Upsert(context stdctx.Context, pref *Preference) error {
	table := schema.CorePreferences
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s`,
		table.Table,
		table.ClientID, table.Zoom, table.Theme, table.Language, table.UpdatedAt,
		table.ClientID,
		table.Zoom, table.Zoom,
		table.Theme, table.Theme,
		table.Language, table.Language,
		table.UpdatedAt, table.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		pref.ClientID,
		pref.Zoom,
		pref.Theme,
		pref.Language,
		pref.UpdatedAt,
	)
	return dberr.Wrap(err, "Preferences", "upsert")
}
