package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/metrics"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// ProfileService manages the caller's profile. userID always comes from the authenticated request.
type ProfileService interface {
	ListProfiles(ctx context.Context, userID int64) ([]*models.Profile, error)
	CreateProfile(ctx context.Context, userID int64, req *dto.ProfileRequest) (*models.Profile, error)
	GetCurrentProfile(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateCurrentProfile(ctx context.Context, userID int64, req *dto.ProfileRequest, partial bool) (*models.Profile, error)
	DeleteCurrentProfile(ctx context.Context, userID int64) error
}

type profileServiceImpl struct {
	profileRepo repositories.ProfileStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo repositories.ProfileStore) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
	}
}

// ListProfiles returns the caller's profiles, at most one
func (s *profileServiceImpl) ListProfiles(ctx context.Context, userID int64) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving profiles: %w", err)
	}
	return profiles, nil
}

// CreateProfile creates the caller's profile. The owner is never taken from the request.
func (s *profileServiceImpl) CreateProfile(ctx context.Context, userID int64, req *dto.ProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{UserID: userID}
	applyProfileRequest(profile, req, false)

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrProfileExists) {
			return nil, apperrors.NewValidationError("user", "A profile for this user already exists.")
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}
	return profile, nil
}

// GetCurrentProfile returns the caller's profile, creating an empty one if none exists
func (s *profileServiceImpl) GetCurrentProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, created, err := s.profileRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	if created {
		metrics.ProfilesLazilyCreated.Inc()
		logger.Debug().Int64("userID", userID).Int64("profileID", profile.ID).Msg("Created profile on first access")
	}
	return profile, nil
}

// UpdateCurrentProfile writes the caller's profile. A full update resets omitted fields to empty.
func (s *profileServiceImpl) UpdateCurrentProfile(ctx context.Context, userID int64, req *dto.ProfileRequest, partial bool) (*models.Profile, error) {
	profile, err := s.GetCurrentProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileRequest(profile, req, partial)

	if err := s.profileRepo.UpdateByUserID(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Deleted between read and write.
			return nil, apperrors.NewResourceNotFoundError("Profile not found.")
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return profile, nil
}

// DeleteCurrentProfile removes the caller's profile. Deleting an absent profile succeeds.
func (s *profileServiceImpl) DeleteCurrentProfile(ctx context.Context, userID int64) error {
	deleted, err := s.profileRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("error deleting profile: %w", err)
	}
	if !deleted {
		logger.Debug().Int64("userID", userID).Msg("Delete requested for absent profile")
	}
	return nil
}

func applyProfileRequest(profile *models.Profile, req *dto.ProfileRequest, partial bool) {
	if req == nil {
		req = &dto.ProfileRequest{}
	}

	switch {
	case req.Major != nil:
		profile.Major = *req.Major
	case !partial:
		profile.Major = ""
	}

	switch {
	case req.Year != nil:
		profile.Year = *req.Year
	case !partial:
		profile.Year = ""
	}
}
