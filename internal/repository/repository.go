package repository

import (
	"context"

	"github.com/fitpair/fitpair-backend/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	// ListOthers returns every profile except the given user's, for
	// candidate discovery.
	ListOthers(ctx context.Context, excludeUserID string) ([]*domain.Profile, error)
}

type PairingRepository interface {
	// Create persists a new pending pairing. Returns
	// domain.ErrPairingExists when a pending or accepted pairing for the
	// same unordered pair already exists.
	Create(ctx context.Context, pairing *domain.Pairing) error
	GetByID(ctx context.Context, id string) (*domain.Pairing, error)
	// GetActiveByUsers looks up the pending/accepted pairing between two
	// users in either direction.
	GetActiveByUsers(ctx context.Context, userA, userB string) (*domain.Pairing, error)
	// ListForUser returns the user's pairings, most recently updated
	// first, optionally filtered by status.
	ListForUser(ctx context.Context, userID string, status *domain.PairingStatus) ([]*domain.Pairing, error)
	// ListActivePartnerIDs returns the counterpart ids of every
	// pending/accepted pairing the user participates in.
	ListActivePartnerIDs(ctx context.Context, userID string) ([]string, error)
	// UpdateStatus transitions a pairing from one status to another. The
	// update is conditional: if the pairing is no longer in `from`,
	// domain.ErrPairingNotPending is returned and nothing changes.
	UpdateStatus(ctx context.Context, id string, from, to domain.PairingStatus) (*domain.Pairing, error)
	UpdateIcebreakers(ctx context.Context, id string, icebreakers []string) error
}

type MessageRepository interface {
	// Append stores a message and assigns it the next sequence number of
	// its pairing. Callers serialize appends per pairing.
	Append(ctx context.Context, msg *domain.Message) error
	// ListByPairing returns all messages of a pairing in ascending
	// sequence order.
	ListByPairing(ctx context.Context, pairingID string) ([]*domain.Message, error)
}

// ScoreCache caches computed compatibility scores per unordered user
// pair. Implementations may be lossy; a miss just means recomputing.
type ScoreCache interface {
	Get(ctx context.Context, userA, userB string) (score int, ok bool, err error)
	Set(ctx context.Context, userA, userB string, score int) error
}
