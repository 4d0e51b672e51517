package matching

import (
	"testing"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func fullProfile(id, goal, workout, availability, location string) *domain.Profile {
	return &domain.Profile{
		UserID:       id,
		Email:        id + "@example.com",
		FitnessGoal:  str(goal),
		WorkoutType:  str(workout),
		Availability: str(availability),
		Location:     str(location),
	}
}

func TestScoreIdenticalProfilesIs100(t *testing.T) {
	s := NewScorer(DefaultWeights())

	a := fullProfile("u1", "lose-weight", "cardio", "morning", "Austin")
	assert.Equal(t, 100, s.Score(a, a))

	// Identity holds for sparse profiles as well.
	sparse := &domain.Profile{UserID: "u2", Email: "u2@example.com"}
	assert.Equal(t, 100, s.Score(sparse, sparse))
}

func TestScoreIsSymmetric(t *testing.T) {
	s := NewScorer(DefaultWeights())

	profiles := []*domain.Profile{
		fullProfile("u1", "lose-weight", "cardio", "morning", "Austin"),
		fullProfile("u2", "build-muscle", "strength", "night", "Denver"),
		{UserID: "u3", Email: "u3@example.com", FitnessGoal: str("maintain")},
		{UserID: "u4", Email: "u4@example.com"},
	}

	for _, a := range profiles {
		for _, b := range profiles {
			assert.Equal(t, s.Score(a, b), s.Score(b, a),
				"score(%s,%s) must equal score(%s,%s)", a.UserID, b.UserID, b.UserID, a.UserID)
		}
	}
}

func TestScoreIsBounded(t *testing.T) {
	s := NewScorer(DefaultWeights())

	cases := [][2]*domain.Profile{
		{fullProfile("a", "lose-weight", "cardio", "morning", "Austin"),
			fullProfile("b", "build-muscle", "strength", "night", "Denver")},
		{fullProfile("a", "maintain", "yoga", "midday", "Boston"),
			{UserID: "b", Email: "b@example.com"}},
		{{UserID: "a", Email: "a@example.com"}, {UserID: "b", Email: "b@example.com"}},
	}
	for _, c := range cases {
		score := s.Score(c[0], c[1])
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestFullyDisagreeingProfilesScoreBelowIdentical(t *testing.T) {
	s := NewScorer(DefaultWeights())

	a := fullProfile("a", "lose-weight", "cardio", "morning", "Austin")
	b := fullProfile("b", "build-muscle", "strength", "night", "Denver")

	assert.Equal(t, 0, s.Score(a, b))
	assert.Less(t, s.Score(a, b), s.Score(a, a))
}

func TestSharedAttributesOutscoreDisjointOnes(t *testing.T) {
	s := NewScorer(DefaultWeights())

	x := fullProfile("x", "lose-weight", "cardio", "morning", "")
	y := fullProfile("y", "lose-weight", "cardio", "morning", "")
	z := fullProfile("z", "build-muscle", "strength", "night", "")

	assert.Greater(t, s.Score(x, y), s.Score(x, z))
}

func TestMissingAttributeIsNeutralNotZero(t *testing.T) {
	s := NewScorer(DefaultWeights())

	full := fullProfile("a", "lose-weight", "cardio", "morning", "Austin")
	sparse := &domain.Profile{UserID: "b", Email: "b@example.com"}
	disagreeing := fullProfile("c", "build-muscle", "strength", "night", "Denver")

	// Undeclared on one side earns half weight on every attribute.
	assert.Equal(t, 50, s.Score(full, sparse))
	// A sparse profile beats one that actively disagrees.
	assert.Greater(t, s.Score(full, sparse), s.Score(full, disagreeing))
}

func TestScoreIgnoresCaseAndWhitespace(t *testing.T) {
	s := NewScorer(DefaultWeights())

	a := fullProfile("a", "Lose-Weight", "cardio", "morning", " Austin ")
	b := fullProfile("b", "lose-weight", "CARDIO", "morning", "austin")

	assert.Equal(t, 100, s.Score(a, b))
}

func TestCustomWeights(t *testing.T) {
	s := NewScorer(Weights{FitnessGoal: 100, WorkoutType: 0, Availability: 0, Location: 0})

	a := fullProfile("a", "maintain", "cardio", "morning", "Austin")
	b := fullProfile("b", "maintain", "strength", "night", "Denver")

	assert.Equal(t, 100, s.Score(a, b))
}

func TestZeroWeightsFallBackToDefaults(t *testing.T) {
	s := NewScorer(Weights{})
	a := fullProfile("a", "maintain", "cardio", "morning", "Austin")
	assert.Equal(t, 100, s.Score(a, a))
}
