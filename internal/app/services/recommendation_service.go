package services

import (
	"context"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// Recommender ranks courses for a user. Implementations may ignore userID.
type Recommender interface {
	Recommend(ctx context.Context, userID int64, limit int) ([]*models.Course, error)
}

// CatalogRecommender is the placeholder ranking: the first courses in catalog order.
type CatalogRecommender struct {
	courseRepo repositories.CourseStore
}

// NewCatalogRecommender creates a recommender backed by the catalog ordering
func NewCatalogRecommender(courseRepo repositories.CourseStore) *CatalogRecommender {
	return &CatalogRecommender{courseRepo: courseRepo}
}

// Recommend returns up to limit courses ordered by department then course code
func (r *CatalogRecommender) Recommend(ctx context.Context, _ int64, limit int) ([]*models.Course, error) {
	if limit <= 0 {
		return []*models.Course{}, nil
	}

	courses, err := r.courseRepo.ListFirst(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recommendations: %w", err)
	}
	return courses, nil
}
