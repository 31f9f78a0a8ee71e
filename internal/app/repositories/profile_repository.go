package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

var profileColumns = []string{"id", "user_id", "major", "year"}

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	p := &models.Profile{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Major, &p.Year); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByUserID returns the user's profiles. The unique constraint keeps this at one row at most.
func (r *ProfileRepository) ListByUserID(ctx context.Context, userID int64) (profiles []*models.Profile, err error) {
	defer observe("profiles", "list", time.Now(), &err)

	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list profiles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list profiles query")
		return nil, fmt.Errorf("error querying profiles: %w", err)
	}
	defer rows.Close()

	profiles = []*models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning profile row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}

// Create inserts a profile for profile.UserID
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) (err error) {
	defer observe("profiles", "create", time.Now(), &err)

	sql, args, err := r.sb.Insert("profiles").
		Columns("user_id", "major", "year").
		Values(profile.UserID, profile.Major, profile.Year).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create profile query: %w", err)
	}

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintProfileUser) {
			return ErrProfileExists
		}
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error creating profile")
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetByUserID retrieves the profile owned by userID
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (profile *models.Profile, err error) {
	defer observe("profiles", "get", time.Now(), &err)
	return r.getByUserID(ctx, userID)
}

func (r *ProfileRepository) getByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile: %w", err)
	}

	return profile, nil
}

// GetOrCreateByUserID returns the user's profile, inserting an empty one when absent.
// Concurrent first calls converge on a single row through the user_id unique constraint.
func (r *ProfileRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (profile *models.Profile, created bool, err error) {
	defer observe("profiles", "get_or_create", time.Now(), &err)

	profile, err = r.getByUserID(ctx, userID)
	if err == nil {
		return profile, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	sql, args, err := r.sb.Insert("profiles").
		Columns("user_id", "major", "year").
		Values(userID, "", "").
		Suffix("ON CONFLICT (user_id) DO NOTHING RETURNING id, user_id, major, year").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build create profile query: %w", err)
	}

	profile, err = scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err == nil {
		return profile, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error lazily creating profile")
		return nil, false, fmt.Errorf("error creating profile: %w", err)
	}

	// Lost the race to a concurrent insert.
	profile, err = r.getByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return profile, false, nil
}

// UpdateByUserID writes major and year of the profile owned by profile.UserID
func (r *ProfileRepository) UpdateByUserID(ctx context.Context, profile *models.Profile) (err error) {
	defer observe("profiles", "update", time.Now(), &err)

	sql, args, err := r.sb.Update("profiles").
		Set("major", profile.Major).
		Set("year", profile.Year).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error updating profile")
		return fmt.Errorf("error updating profile: %w", err)
	}

	return nil
}

// DeleteByUserID removes the user's profile and reports whether a row existed
func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID int64) (deleted bool, err error) {
	defer observe("profiles", "delete", time.Now(), &err)

	sql, args, err := r.sb.Delete("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error deleting profile")
		return false, fmt.Errorf("error deleting profile: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
