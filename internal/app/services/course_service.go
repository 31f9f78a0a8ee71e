package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// CourseService defines the read-only catalog operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseStore) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// ListCourses returns the catalog ordered by department then course code
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, courseNotFound()
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, courseNotFound()
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

func courseNotFound() error {
	return apperrors.NewCustomError(apperrors.ErrCourseNotFound, "Course not found.")
}
