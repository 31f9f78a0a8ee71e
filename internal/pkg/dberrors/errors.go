package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes we translate.
const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports any unique violation, whatever the constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode
}

// IsForeignKeyViolation reports a foreign key violation, optionally on a named constraint.
// An empty constraintName matches any foreign key.
func IsForeignKeyViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != ForeignKeyViolationCode {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}
