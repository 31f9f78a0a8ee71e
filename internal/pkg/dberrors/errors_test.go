package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "bookmarks_user_course_key"})

	assert.True(t, IsDuplicateConstraintError(err, "bookmarks_user_course_key"))
	assert.False(t, IsDuplicateConstraintError(err, "profiles_user_id_key"))
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation_IgnoresMessageText(t *testing.T) {
	// A driver message mentioning the constraint is not enough on its own.
	assert.False(t, IsUniqueViolation(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: ForeignKeyViolationCode}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: ForeignKeyViolationCode, ConstraintName: "bookmarks_course_id_fkey"}

	assert.True(t, IsForeignKeyViolation(err, ""))
	assert.True(t, IsForeignKeyViolation(err, "bookmarks_course_id_fkey"))
	assert.False(t, IsForeignKeyViolation(err, "bookmarks_user_id_fkey"))
	assert.False(t, IsForeignKeyViolation(nil, ""))
}
