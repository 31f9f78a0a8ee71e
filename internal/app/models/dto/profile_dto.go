package dto

import "github.com/yigit/coursehub/internal/app/models"

// ProfileRequest carries the writable profile fields. Any "user" or "id" key in the body is ignored.
// Nil fields are left untouched by partial updates.
type ProfileRequest struct {
	Major *string `json:"major" binding:"omitempty,max=120" example:"Computer Science"`
	Year  *string `json:"year" binding:"omitempty,max=10" example:"Junior"`
}

// ProfileResponse is the wire shape of a profile
type ProfileResponse struct {
	ID    int64  `json:"id" example:"1"`
	User  int64  `json:"user" example:"1"`
	Major string `json:"major" example:"Computer Science"`
	Year  string `json:"year" example:"Junior"`
}

// NewProfileResponse maps a profile model to its response
func NewProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:    p.ID,
		User:  p.UserID,
		Major: p.Major,
		Year:  p.Year,
	}
}

// NewProfileResponses maps a list of profiles, never returning nil
func NewProfileResponses(profiles []*models.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewProfileResponse(p))
	}
	return out
}
