package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// BookmarkController handles the caller's course bookmarks
type BookmarkController struct {
	bookmarkService services.BookmarkService
}

// NewBookmarkController creates a new BookmarkController
func NewBookmarkController(bookmarkService services.BookmarkService) *BookmarkController {
	return &BookmarkController{
		bookmarkService: bookmarkService,
	}
}

// ListBookmarks returns the caller's bookmarks
// @Summary List own bookmarks
// @Description Most recent first
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BookmarkResponse
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/ [get]
func (c *BookmarkController) ListBookmarks(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookmarks, err := c.bookmarkService.ListBookmarks(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewBookmarkResponses(bookmarks))
}

// CreateBookmark bookmarks a course for the caller
// @Summary Bookmark a course
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookmarkRequest true "Course to bookmark"
// @Success 201 {object} dto.BookmarkResponse
// @Failure 400 {object} dto.ErrorResponse "Already bookmarked or unknown course"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/ [post]
func (c *BookmarkController) CreateBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.BookmarkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	bookmark, err := c.bookmarkService.CreateBookmark(ctx.Request.Context(), userID, req.Course.Int64())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewBookmarkResponse(bookmark))
}

// GetBookmark returns one of the caller's bookmarks
// @Summary Get own bookmark
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bookmark ID"
// @Success 200 {object} dto.BookmarkResponse
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/{id}/ [get]
func (c *BookmarkController) GetBookmark(ctx *gin.Context) {
	userID, id, ok := c.scope(ctx)
	if !ok {
		return
	}

	bookmark, err := c.bookmarkService.GetBookmark(ctx.Request.Context(), userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewBookmarkResponse(bookmark))
}

// UpdateBookmark re-points one of the caller's bookmarks at another course
// @Summary Replace own bookmark
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bookmark ID"
// @Param request body dto.BookmarkRequest true "New course"
// @Success 200 {object} dto.BookmarkResponse
// @Failure 400 {object} dto.ErrorResponse "Already bookmarked or unknown course"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/{id}/ [put]
func (c *BookmarkController) UpdateBookmark(ctx *gin.Context) {
	userID, id, ok := c.scope(ctx)
	if !ok {
		return
	}

	var req dto.BookmarkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.writeUpdate(ctx, userID, id, req.Course.Int64())
}

// PatchBookmark is UpdateBookmark with an optional course
// @Summary Partially update own bookmark
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bookmark ID"
// @Param request body dto.BookmarkPatchRequest false "New course"
// @Success 200 {object} dto.BookmarkResponse
// @Failure 400 {object} dto.ErrorResponse "Already bookmarked or unknown course"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/{id}/ [patch]
func (c *BookmarkController) PatchBookmark(ctx *gin.Context) {
	userID, id, ok := c.scope(ctx)
	if !ok {
		return
	}

	var req dto.BookmarkPatchRequest
	if !middleware.BindOptionalJSON(ctx, &req) {
		return
	}

	if req.Course == nil {
		bookmark, err := c.bookmarkService.GetBookmark(ctx.Request.Context(), userID, id)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewBookmarkResponse(bookmark))
		return
	}

	c.writeUpdate(ctx, userID, id, req.Course.Int64())
}

func (c *BookmarkController) writeUpdate(ctx *gin.Context, userID, id, courseID int64) {
	bookmark, err := c.bookmarkService.UpdateBookmark(ctx.Request.Context(), userID, id, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewBookmarkResponse(bookmark))
}

// DeleteBookmark removes one of the caller's bookmarks
// @Summary Delete own bookmark
// @Tags bookmarks
// @Security BearerAuth
// @Param id path int true "Bookmark ID"
// @Success 204 "Bookmark deleted"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/{id}/ [delete]
func (c *BookmarkController) DeleteBookmark(ctx *gin.Context) {
	userID, id, ok := c.scope(ctx)
	if !ok {
		return
	}

	if err := c.bookmarkService.DeleteBookmark(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// scope resolves the caller and the bookmark id. A malformed id is reported as not found.
func (c *BookmarkController) scope(ctx *gin.Context) (userID, id int64, ok bool) {
	if userID, ok = currentUserID(ctx); !ok {
		return 0, 0, false
	}

	if id, ok = helpers.ParseIDParam(ctx, "id"); !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrBookmarkNotFound, "Not found."))
		return 0, 0, false
	}
	return userID, id, true
}
