package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/metrics"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// Messages returned for rejected bookmark writes.
const (
	MsgAlreadyBookmarked = "This course is already bookmarked."
	msgUnknownCourse     = "Invalid pk \"%d\" - object does not exist."
)

// BookmarkService manages the caller's bookmarks. Another user's bookmark behaves as absent.
type BookmarkService interface {
	ListBookmarks(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	CreateBookmark(ctx context.Context, userID, courseID int64) (*models.Bookmark, error)
	GetBookmark(ctx context.Context, userID, id int64) (*models.Bookmark, error)
	UpdateBookmark(ctx context.Context, userID, id, courseID int64) (*models.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, id int64) error
}

type bookmarkServiceImpl struct {
	bookmarkRepo repositories.BookmarkStore
}

// NewBookmarkService creates a new bookmark service instance
func NewBookmarkService(bookmarkRepo repositories.BookmarkStore) BookmarkService {
	return &bookmarkServiceImpl{
		bookmarkRepo: bookmarkRepo,
	}
}

// ListBookmarks returns the caller's bookmarks, most recent first
func (s *bookmarkServiceImpl) ListBookmarks(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	bookmarks, err := s.bookmarkRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bookmarks: %w", err)
	}
	return bookmarks, nil
}

// CreateBookmark bookmarks courseID for the caller
func (s *bookmarkServiceImpl) CreateBookmark(ctx context.Context, userID, courseID int64) (*models.Bookmark, error) {
	bookmark := &models.Bookmark{
		UserID:   userID,
		CourseID: courseID,
	}

	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		if mapped := translateBookmarkWriteError(err, userID, courseID); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("error creating bookmark: %w", err)
	}
	return bookmark, nil
}

// GetBookmark retrieves one of the caller's bookmarks
func (s *bookmarkServiceImpl) GetBookmark(ctx context.Context, userID, id int64) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, bookmarkNotFound()
		}
		return nil, fmt.Errorf("error retrieving bookmark: %w", err)
	}
	return bookmark, nil
}

// UpdateBookmark re-points one of the caller's bookmarks at courseID
func (s *bookmarkServiceImpl) UpdateBookmark(ctx context.Context, userID, id, courseID int64) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.UpdateCourseForUser(ctx, id, userID, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, bookmarkNotFound()
		}
		if mapped := translateBookmarkWriteError(err, userID, courseID); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("error updating bookmark: %w", err)
	}
	return bookmark, nil
}

// DeleteBookmark removes one of the caller's bookmarks
func (s *bookmarkServiceImpl) DeleteBookmark(ctx context.Context, userID, id int64) error {
	if err := s.bookmarkRepo.DeleteForUser(ctx, id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return bookmarkNotFound()
		}
		return fmt.Errorf("error deleting bookmark: %w", err)
	}
	return nil
}

// translateBookmarkWriteError turns constraint outcomes into validation errors on the "course" field.
func translateBookmarkWriteError(err error, userID, courseID int64) error {
	switch {
	case errors.Is(err, repositories.ErrBookmarkExists):
		metrics.BookmarkConflicts.Inc()
		logger.Debug().Int64("userID", userID).Int64("courseID", courseID).Msg("Duplicate bookmark rejected")
		return apperrors.NewValidationError("course", MsgAlreadyBookmarked)
	case errors.Is(err, repositories.ErrCourseReferenceMissing):
		return apperrors.NewValidationError("course", fmt.Sprintf(msgUnknownCourse, courseID))
	}
	return nil
}

func bookmarkNotFound() error {
	return apperrors.NewCustomError(apperrors.ErrBookmarkNotFound, "Bookmark not found.")
}
