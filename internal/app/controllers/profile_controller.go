package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// ProfileController handles the caller's profile.
// The {id} path segment is accepted but never used to select another user's profile.
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// ListProfiles returns the caller's profile as a list
// @Summary List own profiles
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProfileResponse
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/ [get]
func (c *ProfileController) ListProfiles(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	profiles, err := c.profileService.ListProfiles(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProfileResponses(profiles))
}

// CreateProfile creates the caller's profile
// @Summary Create own profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProfileRequest false "Profile fields"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Profile already exists or invalid fields"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/ [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if !middleware.BindOptionalJSON(ctx, &req) {
		return
	}

	profile, err := c.profileService.CreateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewProfileResponse(profile))
}

// GetProfile returns the caller's profile, creating it on first access
// @Summary Get own profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ignored; the caller's profile is always returned"
// @Success 200 {object} dto.ProfileResponse
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{id}/ [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.profileService.GetCurrentProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// UpdateProfile replaces the caller's profile fields
// @Summary Replace own profile
// @Description Omitted fields are reset to empty
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ignored; the caller's profile is always updated"
// @Param request body dto.ProfileRequest false "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid fields"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{id}/ [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	c.update(ctx, false)
}

// PatchProfile updates the given profile fields only
// @Summary Partially update own profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ignored; the caller's profile is always updated"
// @Param request body dto.ProfileRequest false "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid fields"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{id}/ [patch]
func (c *ProfileController) PatchProfile(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *ProfileController) update(ctx *gin.Context, partial bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if !middleware.BindOptionalJSON(ctx, &req) {
		return
	}

	profile, err := c.profileService.UpdateCurrentProfile(ctx.Request.Context(), userID, &req, partial)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// DeleteProfile deletes the caller's profile
// @Summary Delete own profile
// @Tags profiles
// @Security BearerAuth
// @Param id path string true "Ignored; the caller's profile is always deleted"
// @Success 204 "Profile deleted"
// @Failure 403 {object} dto.ErrorResponse "Authentication credentials were not provided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{id}/ [delete]
func (c *ProfileController) DeleteProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := c.profileService.DeleteCurrentProfile(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
