// Copyright (c) 2026 Wavecrate. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
)

// pgUniqueViolation is the SQLSTATE for a unique/primary-key constraint violation.
const pgUniqueViolation = "23505"

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The catalog schema carries no foreign-key constraints, so the only constraint
// the database itself reports is a composite primary-key collision (23505).
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Composite-key collisions become DUPLICATE_KEY
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperr.DuplicateKey("Record")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
