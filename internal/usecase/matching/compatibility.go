package matching

import (
	"math"
	"strings"

	"github.com/fitpair/fitpair-backend/internal/domain"
)

// Weights tunes how much each shared attribute contributes to the
// compatibility score. They are plain relative weights; the score is
// normalized to 0-100 over their sum.
type Weights struct {
	FitnessGoal  int
	WorkoutType  int
	Availability int
	Location     int
}

func DefaultWeights() Weights {
	return Weights{
		FitnessGoal:  40,
		WorkoutType:  30,
		Availability: 20,
		Location:     10,
	}
}

func (w Weights) total() int {
	return w.FitnessGoal + w.WorkoutType + w.Availability + w.Location
}

// Scorer computes compatibility between two profiles. Pure and
// symmetric: Score(a, b) == Score(b, a), always within [0, 100], and
// Score(a, a) == 100.
type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) *Scorer {
	if weights.total() <= 0 {
		weights = DefaultWeights()
	}
	return &Scorer{weights: weights}
}

// Score returns the weighted attribute agreement between two profiles as
// an integer percentage. A matching declared attribute earns its full
// weight, a disagreement earns nothing, and an attribute undeclared on
// one side earns half weight so sparse profiles are not scored near
// zero. An attribute undeclared on both sides earns full weight: there
// is nothing to disagree on.
func (s *Scorer) Score(a, b *domain.Profile) int {
	w := s.weights
	earned := 0.0
	earned += attributeCredit(a.FitnessGoal, b.FitnessGoal) * float64(w.FitnessGoal)
	earned += attributeCredit(a.WorkoutType, b.WorkoutType) * float64(w.WorkoutType)
	earned += attributeCredit(a.Availability, b.Availability) * float64(w.Availability)
	earned += attributeCredit(a.Location, b.Location) * float64(w.Location)

	score := int(math.Round(earned / float64(w.total()) * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func attributeCredit(a, b *string) float64 {
	av, aok := declared(a)
	bv, bok := declared(b)
	switch {
	case !aok && !bok:
		return 1
	case !aok || !bok:
		return 0.5
	case strings.EqualFold(av, bv):
		return 1
	default:
		return 0
	}
}

func declared(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*v)
	return trimmed, trimmed != ""
}
