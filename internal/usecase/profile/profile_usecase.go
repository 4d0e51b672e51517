package profile

import (
	"context"
	"fmt"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository"
)

type UseCase struct {
	profileRepo repository.ProfileRepository
}

func NewUseCase(profileRepo repository.ProfileRepository) *UseCase {
	return &UseCase{profileRepo: profileRepo}
}

// UpdateProfileRequest carries the attribute edits a user can make. All
// fields are optional; absent fields are left untouched.
type UpdateProfileRequest struct {
	DisplayName  *string `json:"display_name" binding:"omitempty,max=100"`
	FitnessGoal  *string `json:"fitness_goal" binding:"omitempty,max=50"`
	WorkoutType  *string `json:"workout_type" binding:"omitempty,max=50"`
	Availability *string `json:"availability" binding:"omitempty,max=50"`
	Location     *string `json:"location" binding:"omitempty,max=100"`
	Bio          *string `json:"bio" binding:"omitempty,max=500"`
}

func (uc *UseCase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

func (uc *UseCase) GetProfileByUserID(ctx context.Context, targetUserID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, targetUserID)
}

func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = req.DisplayName
	}
	if req.FitnessGoal != nil {
		profile.FitnessGoal = req.FitnessGoal
	}
	if req.WorkoutType != nil {
		profile.WorkoutType = req.WorkoutType
	}
	if req.Availability != nil {
		profile.Availability = req.Availability
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
