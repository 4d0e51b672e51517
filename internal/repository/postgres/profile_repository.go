package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	query := `
		SELECT user_id, email, display_name, fitness_goal, workout_type,
		       availability, location, bio, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, fitness_goal = $2, workout_type = $3,
		    availability = $4, location = $5, bio = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $7
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.FitnessGoal, profile.WorkoutType,
		profile.Availability, profile.Location, profile.Bio,
		profile.UserID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) ListOthers(ctx context.Context, excludeUserID string) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `
		SELECT user_id, email, display_name, fitness_goal, workout_type,
		       availability, location, bio, created_at, updated_at
		FROM profiles
		WHERE user_id <> $1
		ORDER BY user_id
	`
	err := r.db.SelectContext(ctx, &profiles, query, excludeUserID)
	return profiles, err
}
