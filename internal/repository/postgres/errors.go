package postgres

import (
	"errors"
	"fmt"
	"strings"

	"bloglist/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
	pgNumericOutOfRange   = "22003"
)

// checkMessages are the client-facing messages for named CHECK constraints
var checkMessages = map[string]string{
	"blogs_title_not_blank":    "title: cannot be blank.",
	"blogs_url_not_blank":      "url: cannot be blank.",
	"blogs_likes_non_negative": "likes: must be no less than 0.",
}

func pgErrorCode(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsPgDuplicateError checks if error is a unique constraint violation
func IsPgDuplicateError(err error) bool {
	pgErr, ok := pgErrorCode(err)
	return ok && pgErr.Code == pgUniqueViolation
}

// IsPgNoRowsError checks if error is a "no rows" error
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgForeignKeyError checks if error is a foreign key violation
func IsPgForeignKeyError(err error) bool {
	pgErr, ok := pgErrorCode(err)
	return ok && pgErr.Code == pgForeignKeyViolation
}

// IsPgCheckViolation checks if error is a CHECK constraint violation
func IsPgCheckViolation(err error) bool {
	pgErr, ok := pgErrorCode(err)
	return ok && pgErr.Code == pgCheckViolation
}

// IsPgInvalidTextError checks if a value could not be parsed, e.g. a bad uuid
func IsPgInvalidTextError(err error) bool {
	pgErr, ok := pgErrorCode(err)
	return ok && pgErr.Code == pgInvalidText
}

// IsPgOutOfRangeError checks if a numeric value did not fit its column
func IsPgOutOfRangeError(err error) bool {
	pgErr, ok := pgErrorCode(err)
	return ok && pgErr.Code == pgNumericOutOfRange
}

// translateError converts driver errors into domain errors. op names the
// failed operation for errors that stay unclassified.
func translateError(op string, err error) error {
	switch {
	case IsPgNoRowsError(err):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case IsPgDuplicateError(err):
		pgErr, _ := pgErrorCode(err)
		return &domain.UniquenessError{Field: uniqueField(pgErr.ConstraintName)}
	case IsPgCheckViolation(err):
		pgErr, _ := pgErrorCode(err)
		msg, ok := checkMessages[pgErr.ConstraintName]
		if !ok {
			msg = fmt.Sprintf("%s: constraint violated", pgErr.ConstraintName)
		}
		return &domain.ValidationError{Message: msg}
	case IsPgInvalidTextError(err):
		return fmt.Errorf("%s: %w", op, domain.ErrMalformedID)
	case IsPgOutOfRangeError(err):
		return &domain.ValidationError{Message: "value out of range"}
	// The referenced owner row is gone
	case IsPgForeignKeyError(err):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// uniqueField derives the column from a default unique constraint name,
// e.g. "users_username_key" -> "username"
func uniqueField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_key")
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "value"
	}
	return name
}

// checkID rejects IDs that are not UUIDs before they reach the database
func checkID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s id %q: %w", kind, id, domain.ErrMalformedID)
	}
	return nil
}
