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

var bookmarkColumns = []string{"id", "user_id", "course_id", "created_at"}

// BookmarkRepository handles bookmark database operations
type BookmarkRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewBookmarkRepository creates a new BookmarkRepository
func NewBookmarkRepository(db DBTX) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanBookmark(row pgx.Row) (*models.Bookmark, error) {
	b := &models.Bookmark{}
	if err := row.Scan(&b.ID, &b.UserID, &b.CourseID, &b.CreatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

// translateWriteError maps constraint violations raised by an insert or update.
func translateWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, constraintBookmarkUnique):
		return ErrBookmarkExists
	case dberrors.IsForeignKeyViolation(err, constraintBookmarkCourseFK):
		return ErrCourseReferenceMissing
	}
	return nil
}

// ListByUserID returns the user's bookmarks, most recent first
func (r *BookmarkRepository) ListByUserID(ctx context.Context, userID int64) (bookmarks []*models.Bookmark, err error) {
	defer observe("bookmarks", "list", time.Now(), &err)

	sql, args, err := r.sb.Select(bookmarkColumns...).
		From("bookmarks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list bookmarks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list bookmarks query")
		return nil, fmt.Errorf("error querying bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks = []*models.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning bookmark row: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmark rows: %w", err)
	}

	return bookmarks, nil
}

// Create inserts a bookmark and fills in its id and creation time
func (r *BookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) (err error) {
	defer observe("bookmarks", "create", time.Now(), &err)

	sql, args, err := r.sb.Insert("bookmarks").
		Columns("user_id", "course_id").
		Values(bookmark.UserID, bookmark.CourseID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create bookmark query: %w", err)
	}

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&bookmark.ID, &bookmark.CreatedAt); err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).
			Int64("userID", bookmark.UserID).
			Int64("courseID", bookmark.CourseID).
			Msg("Error creating bookmark")
		return fmt.Errorf("error creating bookmark: %w", err)
	}

	return nil
}

// GetForUser retrieves a bookmark only if userID owns it
func (r *BookmarkRepository) GetForUser(ctx context.Context, id, userID int64) (bookmark *models.Bookmark, err error) {
	defer observe("bookmarks", "get", time.Now(), &err)

	sql, args, err := r.sb.Select(bookmarkColumns...).
		From("bookmarks").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get bookmark query: %w", err)
	}

	bookmark, err = scanBookmark(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("bookmarkID", id).Msg("Error scanning bookmark row")
		return nil, fmt.Errorf("error getting bookmark: %w", err)
	}

	return bookmark, nil
}

// UpdateCourseForUser re-points a bookmark owned by userID at another course
func (r *BookmarkRepository) UpdateCourseForUser(ctx context.Context, id, userID, courseID int64) (bookmark *models.Bookmark, err error) {
	defer observe("bookmarks", "update", time.Now(), &err)

	sql, args, err := r.sb.Update("bookmarks").
		Set("course_id", courseID).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING id, user_id, course_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update bookmark query: %w", err)
	}

	bookmark, err = scanBookmark(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if mapped := translateWriteError(err); mapped != nil {
			return nil, mapped
		}
		logger.Error().Err(err).Int64("bookmarkID", id).Msg("Error updating bookmark")
		return nil, fmt.Errorf("error updating bookmark: %w", err)
	}

	return bookmark, nil
}

// DeleteForUser removes a bookmark owned by userID. Someone else's bookmark is reported as ErrNotFound.
func (r *BookmarkRepository) DeleteForUser(ctx context.Context, id, userID int64) (err error) {
	defer observe("bookmarks", "delete", time.Now(), &err)

	sql, args, err := r.sb.Delete("bookmarks").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete bookmark query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("bookmarkID", id).Msg("Error deleting bookmark")
		return fmt.Errorf("error deleting bookmark: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
