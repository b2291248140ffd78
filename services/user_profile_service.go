package services

import (
	"context"
	"strings"
	"time"

	"codecollab_server/apperrors"
	"codecollab_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserProfileService owns profile CRUD and the completion summary
type UserProfileService struct {
	Users UserRepository
	Log   *zap.Logger
}

// ProfileCompletion summarizes how filled-out a profile is. A profile is
// considered complete at 80% or above.
type ProfileCompletion struct {
	Percentage    int      `json:"percentage"`
	MissingFields []string `json:"missingFields"`
	IsComplete    bool     `json:"isComplete"`
}

// CreateUserProfile stores a new profile. Emails must be unique; a second
// profile for the same address is rejected as a validation failure.
func (s *UserProfileService) CreateUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	if strings.TrimSpace(profile.EmailID) == "" {
		return nil, apperrors.Validation("email is required")
	}

	existing, err := s.Users.GetByEmail(ctx, profile.EmailID)
	if err != nil {
		return nil, apperrors.Storage("failed to check existing profile", err)
	}
	if existing != nil {
		return nil, apperrors.Validation("a profile already exists for this email")
	}

	profile.UserID = uuid.New().String()
	profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if profile.ExperienceLevel == "" {
		profile.ExperienceLevel = models.ExperienceBeginner
	}

	if err := s.Users.Put(ctx, profile); err != nil {
		return nil, apperrors.Storage("failed to create profile", err)
	}

	s.Log.Info("profile created", zap.String("userId", profile.UserID))
	return &profile, nil
}

// GetUserProfile retrieves a profile by ID
func (s *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.Users.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch profile", err)
	}
	if profile == nil {
		return nil, apperrors.NotFound("profile not found")
	}
	return profile, nil
}

// GetUserProfileByEmail retrieves a profile by email address
func (s *UserProfileService) GetUserProfileByEmail(ctx context.Context, emailID string) (*models.UserProfile, error) {
	profile, err := s.Users.GetByEmail(ctx, emailID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch profile by email", err)
	}
	if profile == nil {
		return nil, apperrors.NotFound("profile not found")
	}
	return profile, nil
}

// UpdateUserProfile overwrites the viewer's own editable fields
func (s *UserProfileService) UpdateUserProfile(ctx context.Context, viewer *models.UserProfile, updated models.UserProfile) (*models.UserProfile, error) {
	if viewer == nil {
		return nil, apperrors.Unauthorized("sign in to update your profile")
	}
	if strings.TrimSpace(updated.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}

	// Identity fields are never writable through an update.
	updated.UserID = viewer.UserID
	updated.EmailID = viewer.EmailID
	updated.CreatedAt = viewer.CreatedAt
	if updated.ExperienceLevel == "" {
		updated.ExperienceLevel = models.ExperienceBeginner
	}

	if err := s.Users.Put(ctx, updated); err != nil {
		return nil, apperrors.Storage("failed to update profile", err)
	}
	return &updated, nil
}

// DeleteUserProfile removes the viewer's own profile
func (s *UserProfileService) DeleteUserProfile(ctx context.Context, viewer *models.UserProfile) error {
	if viewer == nil {
		return apperrors.Unauthorized("sign in to delete your profile")
	}
	if err := s.Users.Delete(ctx, viewer.UserID); err != nil {
		return apperrors.Storage("failed to delete profile", err)
	}
	s.Log.Info("profile deleted", zap.String("userId", viewer.UserID))
	return nil
}

// Completion computes the weighted completion percentage of a profile.
// Weights mirror what the profile page nudges users to fill in first.
func (s *UserProfileService) Completion(viewer *models.UserProfile) (*ProfileCompletion, error) {
	if viewer == nil {
		return nil, apperrors.Unauthorized("sign in to view profile completion")
	}

	fields := []struct {
		name   string
		weight int
		filled bool
	}{
		{"name", 15, strings.TrimSpace(viewer.Name) != ""},
		{"bio", 20, strings.TrimSpace(viewer.Bio) != ""},
		{"skills", 25, len(viewer.Skills) > 0},
		{"experienceLevel", 15, viewer.ExperienceLevel != ""},
		{"location", 10, strings.TrimSpace(viewer.Location) != ""},
		{"githubUrl", 10, strings.TrimSpace(viewer.GithubURL) != ""},
		{"image", 5, strings.TrimSpace(viewer.Image) != ""},
	}

	total, filled := 0, 0
	missing := []string{}
	for _, f := range fields {
		total += f.weight
		if f.filled {
			filled += f.weight
		} else {
			missing = append(missing, f.name)
		}
	}

	percentage := filled * 100 / total
	return &ProfileCompletion{
		Percentage:    percentage,
		MissingFields: missing,
		IsComplete:    percentage >= 80,
	}, nil
}
