package dto

import "github.com/yigit/coursehub/internal/app/models"

// CourseResponse is the wire shape of a catalog entry
type CourseResponse struct {
	ID       int64  `json:"id" example:"1"`
	CourseID string `json:"course_id" example:"CS 225"`
	Dept     string `json:"dept" example:"CS"`
	Title    string `json:"title" example:"Data Structures"`
	Credits  int    `json:"credits" example:"4"`
}

// NewCourseResponse maps a course model to its response
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:       c.ID,
		CourseID: c.CourseID,
		Dept:     c.Dept,
		Title:    c.Title,
		Credits:  c.Credits,
	}
}

// NewCourseResponses maps a list of courses, never returning nil
func NewCourseResponses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// RecommendationsResponse wraps the recommended courses
type RecommendationsResponse struct {
	Recommendations []CourseResponse `json:"recommendations"`
}
