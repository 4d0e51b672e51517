package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository"
	"go.uber.org/zap"
)

// Candidate is one entry of the partner discovery feed.
type Candidate struct {
	Profile *domain.Profile `json:"profile"`
	Score   int             `json:"compatibility_score"`
}

// CandidateFinder builds the ordered candidate list for a requester:
// everyone except the requester and users with a pending or accepted
// pairing with them. Declined pairings do not exclude a candidate.
type CandidateFinder struct {
	profileRepo repository.ProfileRepository
	pairingRepo repository.PairingRepository
	scorer      *Scorer
	cache       repository.ScoreCache
	logger      *zap.Logger
}

func NewCandidateFinder(
	profileRepo repository.ProfileRepository,
	pairingRepo repository.PairingRepository,
	scorer *Scorer,
	cache repository.ScoreCache,
	logger *zap.Logger,
) *CandidateFinder {
	return &CandidateFinder{
		profileRepo: profileRepo,
		pairingRepo: pairingRepo,
		scorer:      scorer,
		cache:       cache,
		logger:      logger,
	}
}

// FindCandidates returns eligible candidates sorted by score descending,
// ties broken by user id so the order is reproducible. An empty slice,
// not an error, means nobody is eligible.
func (f *CandidateFinder) FindCandidates(ctx context.Context, requesterID string) ([]*Candidate, error) {
	requester, err := f.profileRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	partnerIDs, err := f.pairingRepo.ListActivePartnerIDs(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing partners: %w", err)
	}
	excluded := make(map[string]struct{}, len(partnerIDs))
	for _, id := range partnerIDs {
		excluded[id] = struct{}{}
	}

	profiles, err := f.profileRepo.ListOthers(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	candidates := make([]*Candidate, 0, len(profiles))
	for _, p := range profiles {
		if _, gone := excluded[p.UserID]; gone {
			continue
		}
		candidates = append(candidates, &Candidate{
			Profile: p,
			Score:   f.scoreFor(ctx, requester, p),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Profile.UserID < candidates[j].Profile.UserID
	})

	return candidates, nil
}

// scoreFor consults the score cache before computing. Cache failures are
// logged and otherwise ignored; scoring is cheap enough to redo.
func (f *CandidateFinder) scoreFor(ctx context.Context, a, b *domain.Profile) int {
	if f.cache != nil {
		score, ok, err := f.cache.Get(ctx, a.UserID, b.UserID)
		if err != nil {
			f.logger.Debug("score cache read failed", zap.Error(err))
		} else if ok {
			return score
		}
	}

	score := f.scorer.Score(a, b)

	if f.cache != nil {
		if err := f.cache.Set(ctx, a.UserID, b.UserID, score); err != nil {
			f.logger.Debug("score cache write failed", zap.Error(err))
		}
	}
	return score
}
