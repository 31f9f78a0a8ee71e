package models

// Profile holds per-user academic metadata. At most one row exists per user.
type Profile struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"user" db:"user_id"`
	Major  string `json:"major" db:"major"`
	Year   string `json:"year" db:"year"`
}
