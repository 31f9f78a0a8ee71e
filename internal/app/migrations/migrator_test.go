package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_AreOrderedGooseFiles(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, migrationDir)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for _, e := range entries {
		body, err := fs.ReadFile(migrationFS, migrationDir+"/"+e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestEmbeddedMigrations_DeclareNamedConstraints(t *testing.T) {
	body, err := fs.ReadFile(migrationFS, migrationDir+"/00004_create_bookmarks.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "CONSTRAINT bookmarks_user_course_key UNIQUE (user_id, course_id)"))

	body, err = fs.ReadFile(migrationFS, migrationDir+"/00003_create_profiles.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "CONSTRAINT profiles_user_id_key UNIQUE (user_id)"))
}

func TestApply_WrapsFailure(t *testing.T) {
	orig := upFunc
	t.Cleanup(func() { upFunc = orig })

	var gotDir string
	upFunc = func(ctx context.Context, db *sql.DB, dir string) error {
		gotDir = dir
		return errors.New("relation exists")
	}

	err := Apply(context.Background(), nil, zerolog.Nop())
	assert.ErrorContains(t, err, "failed to apply migrations")
	assert.Equal(t, "sql", gotDir)
}

func TestApply_Success(t *testing.T) {
	orig := upFunc
	t.Cleanup(func() { upFunc = orig })

	called := false
	upFunc = func(ctx context.Context, db *sql.DB, dir string) error {
		called = true
		return nil
	}

	require.NoError(t, Apply(context.Background(), nil, zerolog.Nop()))
	assert.True(t, called)
}
