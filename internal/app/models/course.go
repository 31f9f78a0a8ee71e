package models

// DefaultCredits is used when a course is imported without a credit count.
const DefaultCredits = 3

// Course is a catalog entry. Rows are written only by seed and import tooling.
type Course struct {
	ID       int64  `json:"id" db:"id"`
	CourseID string `json:"course_id" db:"course_id"` // Human-readable code, e.g. "CS 225"
	Dept     string `json:"dept" db:"dept"`
	Title    string `json:"title" db:"title"`
	Credits  int    `json:"credits" db:"credits"`
}
