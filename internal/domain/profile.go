package domain

import "time"

// Profile holds the declared fitness attributes a user is matched on.
// All attributes are optional; the matcher treats a missing attribute as
// neutral rather than a mismatch.
type Profile struct {
	UserID       string    `json:"user_id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	DisplayName  *string   `json:"display_name" db:"display_name"`
	FitnessGoal  *string   `json:"fitness_goal" db:"fitness_goal"`
	WorkoutType  *string   `json:"workout_type" db:"workout_type"`
	Availability *string   `json:"availability" db:"availability"`
	Location     *string   `json:"location" db:"location"`
	Bio          *string   `json:"bio" db:"bio"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Attribute values offered by the web client. Stored as plain text, so
// unknown values are tolerated.
var (
	FitnessGoals      = []string{"lose-weight", "build-muscle", "improve-endurance", "maintain"}
	WorkoutTypes      = []string{"cardio", "strength", "hiit", "yoga", "mixed"}
	AvailabilitySlots = []string{"morning", "midday", "evening", "night"}
)
