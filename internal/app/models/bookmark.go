package models

import "time"

// Bookmark is a user's saved reference to a course, unique per (user, course).
type Bookmark struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user" db:"user_id"`
	CourseID  int64     `json:"course" db:"course_id"` // Surrogate id of the course, not its code
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
