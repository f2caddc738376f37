// Copyright (c) 2026 Fittessness. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
//   - pgx.ErrNoRows            → NOT_FOUND
//   - SQLSTATE 23505 (unique)  → CONFLICT (duplicate key)
//   - SQLSTATE class 08 / ctx  → SERVICE_UNAVAILABLE (transient connectivity)
//   - anything else            → INTERNAL_ERROR
//
// Which unique constraint was violated (username vs email) is deliberately
// NOT surfaced: the ambiguous message resists account enumeration.
package dberr

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fittessness/fittessness/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the
// error type. conflictMsg is the client-safe message for unique violations.
func Wrap(err error, resource, conflictMsg string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Postgres SQLSTATE classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return apperr.Conflict(conflictMsg)
		}
		if pgerrcode.IsConnectionException(pgErr.Code) {
			return apperr.Unavailable(err)
		}
	}

	// 3. Connectivity loss outside the SQLSTATE taxonomy
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Unavailable(err)
	}

	// 4. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
