// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/flagdex/internal/platform/apperr"
)

// SQLSTATE classes that indicate the database itself is unreachable or shutting down.
const (
	classConnection = "08"
	classOperator   = "57"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
//	return dberr.Wrap(err, "preference", "load")
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Connection failures become 503 so clients may retry
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case classConnection, classOperator:
			return apperr.ServiceUnavailable("Database unavailable", fmt.Errorf("%s %s: %w", action, resource, err))
		}
	}

	// 3. Anything else is an internal error
	return apperr.Internal(fmt.Errorf("%s %s: %w", action, resource, err))
}
