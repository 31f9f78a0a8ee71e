package dto

import (
	"time"

	"github.com/yigit/coursehub/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150,username"`
	Email    string `json:"email" binding:"omitempty,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"86400"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Username  string    `json:"username" example:"alma"`
	Email     string    `json:"email,omitempty" example:"alma@illinois.edu"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewUserResponse maps a user to its public representation
func NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
	if user.Email != nil {
		resp.Email = *user.Email
	}
	return resp
}
