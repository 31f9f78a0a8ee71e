package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// RecommendationController serves course recommendations
type RecommendationController struct {
	recommender  services.Recommender
	defaultLimit int
	maxLimit     int
}

// NewRecommendationController creates a new RecommendationController
func NewRecommendationController(recommender services.Recommender, defaultLimit, maxLimit int) *RecommendationController {
	return &RecommendationController{
		recommender:  recommender,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// GetRecommendations returns up to limit courses for the caller
// @Summary Course recommendations
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of courses to return (default 5, max 100)"
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recommendations/ [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	limit, err := helpers.ParseLimitParam(ctx, c.defaultLimit, c.maxLimit)
	if err != nil {
		if errors.Is(err, helpers.ErrInvalidLimit) {
			err = apperrors.NewValidationError("limit", "A valid non-negative integer is required.")
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.recommender.Recommend(ctx.Request.Context(), userID, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecommendationsResponse{
		Recommendations: dto.NewCourseResponses(courses),
	})
}
