package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrProtected is returned when a delete is blocked by dependent rows,
	// e.g. removing a category that still has products.
	ErrProtected = errors.New("operation blocked by dependent records")
)

// UniquenessError reports a violated uniqueness rule on a single field,
// surfaced to callers as a field-level message.
type UniquenessError struct {
	Field string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// ValidationError reports input that failed domain validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IntegrityError reports stored data that violates an internal invariant,
// e.g. two registered schemas sharing a discriminant. Callers should log it
// and reject the request rather than retry.
type IntegrityError struct {
	Reason string
}

func (e *IntegrityError) Error() string {
	return "data integrity error: " + e.Reason
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromPG translates Postgres constraint violations into domain errors.
// constraintFields maps constraint names to the field reported in the
// resulting UniquenessError; unknown constraints fall through unchanged.
func FromPG(err error, constraintFields map[string]string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if field, ok := constraintFields[pgErr.ConstraintName]; ok {
			return &UniquenessError{Field: field}
		}
		return &UniquenessError{Field: pgErr.ConstraintName}
	case pgForeignKeyViolation:
		return ErrProtected
	}
	return err
}

// IsUniqueViolation reports whether err is a Postgres unique violation on the
// named constraint. Used by the ordinal assigner to decide whether to retry.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
}
