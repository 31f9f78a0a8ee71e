package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"alma"`
	Email     *string   `json:"email,omitempty" db:"email" example:"alma@illinois.edu"` // Nullable
	Password  string    `json:"-" db:"password"`                                        // bcrypt hash, never serialized
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
