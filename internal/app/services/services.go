// Package services holds the business rules between controllers and repositories.
//
// Services defined in this package:
//   - AuthService: registration and login
//   - CourseService: read-only catalog access
//   - ProfileService: the caller's profile, created lazily on first retrieval
//   - BookmarkService: the caller's bookmarks, unique per course
//   - Recommender: ranks courses for the recommendations endpoint
//
// Every scoped operation takes the caller's user id as an explicit argument.
package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// Services groups every service the API layer depends on
type Services struct {
	Auth        AuthService
	Courses     CourseService
	Profiles    ProfileService
	Bookmarks   BookmarkService
	Recommender Recommender
}

// NewServices builds the service set over a repository set
func NewServices(repos *repositories.Repositories, tokens TokenIssuer, logger zerolog.Logger) *Services {
	return &Services{
		Auth:        NewAuthService(repos.Users, tokens, logger),
		Courses:     NewCourseService(repos.Courses),
		Profiles:    NewProfileService(repos.Profiles),
		Bookmarks:   NewBookmarkService(repos.Bookmarks),
		Recommender: NewCatalogRecommender(repos.Courses),
	}
}
