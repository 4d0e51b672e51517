package pairing

import (
	"context"
	"fmt"
	"time"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/infrastructure/gemini"
	"github.com/fitpair/fitpair-backend/internal/repository"
	"github.com/fitpair/fitpair-backend/internal/usecase/matching"
	"github.com/fitpair/fitpair-backend/pkg/keylock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DecisionAccept  = "accept"
	DecisionDecline = "decline"
)

// UseCase owns the pairing state machine: propose creates the only
// pending path in, respond is the only mutation of status. Per-pair and
// per-pairing serialization goes through the shared key lock; the
// database constraints are the backstop.
type UseCase struct {
	profileRepo  repository.ProfileRepository
	pairingRepo  repository.PairingRepository
	scorer       *matching.Scorer
	locks        *keylock.KeyLock
	geminiClient *gemini.Client
	logger       *zap.Logger
}

func NewUseCase(
	profileRepo repository.ProfileRepository,
	pairingRepo repository.PairingRepository,
	scorer *matching.Scorer,
	locks *keylock.KeyLock,
	geminiClient *gemini.Client,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		profileRepo:  profileRepo,
		pairingRepo:  pairingRepo,
		scorer:       scorer,
		locks:        locks,
		geminiClient: geminiClient,
		logger:       logger,
	}
}

// PairingView is a pairing enriched with the counterpart's profile for
// display.
type PairingView struct {
	*domain.Pairing
	Counterpart *domain.Profile `json:"counterpart"`
}

func pairLockKey(a, b string) string {
	low, high := domain.PairKey(a, b)
	return "pair:" + low + ":" + high
}

func pairingLockKey(id string) string {
	return "pairing:" + id
}

// Propose creates a pending pairing from requester to recipient with the
// compatibility score frozen at this moment. Exactly one of N concurrent
// proposals for the same unordered pair succeeds.
func (uc *UseCase) Propose(ctx context.Context, requesterID, recipientID string) (*domain.Pairing, error) {
	if requesterID == recipientID {
		return nil, domain.ErrSelfPairing
	}

	requester, err := uc.profileRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	recipient, err := uc.profileRepo.GetByUserID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(pairLockKey(requesterID, recipientID))
	defer unlock()

	_, err = uc.pairingRepo.GetActiveByUsers(ctx, requesterID, recipientID)
	if err == nil {
		return nil, domain.ErrPairingExists
	}
	if err != domain.ErrPairingNotFound {
		return nil, fmt.Errorf("failed to check existing pairing: %w", err)
	}

	pairing := &domain.Pairing{
		ID:                 uuid.NewString(),
		RequesterID:        requesterID,
		RecipientID:        recipientID,
		Status:             domain.PairingPending,
		CompatibilityScore: uc.scorer.Score(requester, recipient),
	}

	if err := uc.pairingRepo.Create(ctx, pairing); err != nil {
		return nil, err
	}

	uc.logger.Info("pairing proposed",
		zap.String("pairing_id", pairing.ID),
		zap.String("requester_id", requesterID),
		zap.String("recipient_id", recipientID),
		zap.Int("score", pairing.CompatibilityScore),
	)

	return pairing, nil
}

// Respond resolves a pending pairing. Only the recipient may respond,
// and only while the pairing is pending; accepted and declined are
// terminal.
func (uc *UseCase) Respond(ctx context.Context, pairingID, actingUserID, decision string) (*domain.Pairing, error) {
	var target domain.PairingStatus
	switch decision {
	case DecisionAccept:
		target = domain.PairingAccepted
	case DecisionDecline:
		target = domain.PairingDeclined
	default:
		return nil, domain.ErrInvalidDecision
	}

	unlock := uc.locks.Lock(pairingLockKey(pairingID))
	defer unlock()

	pairing, err := uc.pairingRepo.GetByID(ctx, pairingID)
	if err != nil {
		return nil, err
	}
	if pairing.RecipientID != actingUserID {
		return nil, domain.ErrNotRecipient
	}
	if pairing.Status != domain.PairingPending {
		return nil, domain.ErrPairingNotPending
	}

	updated, err := uc.pairingRepo.UpdateStatus(ctx, pairingID, domain.PairingPending, target)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("pairing resolved",
		zap.String("pairing_id", pairingID),
		zap.String("status", string(updated.Status)),
	)

	if updated.Status == domain.PairingAccepted && uc.geminiClient != nil {
		go uc.enrichWithIcebreakers(updated.ID, updated.RequesterID, updated.RecipientID)
	}

	return updated, nil
}

// ListForUser returns the user's pairings, most recently updated first,
// each with the counterpart profile attached. A counterpart whose
// profile cannot be loaded is returned without one rather than failing
// the whole listing.
func (uc *UseCase) ListForUser(ctx context.Context, userID string, status *domain.PairingStatus) ([]*PairingView, error) {
	if _, err := uc.profileRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}

	pairings, err := uc.pairingRepo.ListForUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list pairings: %w", err)
	}

	views := make([]*PairingView, 0, len(pairings))
	for _, p := range pairings {
		view := &PairingView{Pairing: p}
		if otherID, ok := p.CounterpartID(userID); ok {
			counterpart, err := uc.profileRepo.GetByUserID(ctx, otherID)
			if err == nil {
				view.Counterpart = counterpart
			} else {
				uc.logger.Warn("counterpart profile missing",
					zap.String("pairing_id", p.ID),
					zap.String("user_id", otherID),
				)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// enrichWithIcebreakers asks Gemini for opening lines once a pairing is
// accepted and stores them on the pairing. Best effort: failures are
// logged and the pairing stays usable without suggestions.
func (uc *UseCase) enrichWithIcebreakers(pairingID, requesterID, recipientID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	requester, err := uc.profileRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		uc.logger.Warn("icebreaker enrichment skipped", zap.String("pairing_id", pairingID), zap.Error(err))
		return
	}
	recipient, err := uc.profileRepo.GetByUserID(ctx, recipientID)
	if err != nil {
		uc.logger.Warn("icebreaker enrichment skipped", zap.String("pairing_id", pairingID), zap.Error(err))
		return
	}

	icebreakers, err := uc.geminiClient.GenerateIcebreakers(ctx, requester, recipient)
	if err != nil {
		uc.logger.Warn("icebreaker generation failed", zap.String("pairing_id", pairingID), zap.Error(err))
		return
	}

	if err := uc.pairingRepo.UpdateIcebreakers(ctx, pairingID, icebreakers); err != nil {
		uc.logger.Warn("failed to store icebreakers", zap.String("pairing_id", pairingID), zap.Error(err))
	}
}
