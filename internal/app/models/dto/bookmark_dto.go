package dto

import (
	"time"

	"github.com/yigit/coursehub/internal/app/models"
)

// BookmarkRequest names the course to bookmark by its surrogate id.
// Any "user" key in the body is ignored; the owner is always the caller.
type BookmarkRequest struct {
	Course PrimaryKey `json:"course" binding:"required,min=1" swaggertype:"integer" example:"1"`
}

// BookmarkResponse is the wire shape of a bookmark
type BookmarkResponse struct {
	ID        int64     `json:"id" example:"1"`
	User      int64     `json:"user" example:"1"`
	Course    int64     `json:"course" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-15T10:00:00Z"`
}

// NewBookmarkResponse maps a bookmark model to its response
func NewBookmarkResponse(b *models.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:        b.ID,
		User:      b.UserID,
		Course:    b.CourseID,
		CreatedAt: b.CreatedAt,
	}
}

// NewBookmarkResponses maps a list of bookmarks, never returning nil
func NewBookmarkResponses(bookmarks []*models.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, NewBookmarkResponse(b))
	}
	return out
}

// BookmarkPatchRequest is the partial form of BookmarkRequest. A nil Course leaves the bookmark unchanged.
type BookmarkPatchRequest struct {
	Course *PrimaryKey `json:"course" binding:"omitempty,min=1" swaggertype:"integer" example:"2"`
}
