// Package memory provides in-memory repository implementations for tests
// and local development. They enforce the same invariants as the
// PostgreSQL schema: one pending/accepted pairing per unordered user pair
// and strictly increasing per-pairing message sequence numbers.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository"
)

type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[string]*domain.Profile)}
}

// Seed inserts a profile directly, for test setup.
func (r *ProfileRepository) Seed(profiles ...*domain.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range profiles {
		cp := *p
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = time.Now()
			cp.UpdatedAt = cp.CreatedAt
		}
		r.profiles[cp.UserID] = &cp
	}
}

func (r *ProfileRepository) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProfileRepository) Update(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.profiles[profile.UserID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	cp := *profile
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	r.profiles[cp.UserID] = &cp
	profile.UpdatedAt = cp.UpdatedAt
	return nil
}

func (r *ProfileRepository) ListOthers(_ context.Context, excludeUserID string) ([]*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Profile, 0, len(r.profiles))
	for id, p := range r.profiles {
		if id == excludeUserID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

type PairingRepository struct {
	mu       sync.Mutex
	pairings map[string]*domain.Pairing
}

func NewPairingRepository() *PairingRepository {
	return &PairingRepository{pairings: make(map[string]*domain.Pairing)}
}

func (r *PairingRepository) Create(_ context.Context, pairing *domain.Pairing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activeLocked(pairing.RequesterID, pairing.RecipientID) != nil {
		return domain.ErrPairingExists
	}
	now := time.Now()
	cp := *pairing
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.pairings[cp.ID] = &cp
	pairing.CreatedAt = now
	pairing.UpdatedAt = now
	return nil
}

func (r *PairingRepository) activeLocked(userA, userB string) *domain.Pairing {
	lowWant, highWant := domain.PairKey(userA, userB)
	for _, p := range r.pairings {
		if p.Status == domain.PairingDeclined {
			continue
		}
		low, high := domain.PairKey(p.RequesterID, p.RecipientID)
		if low == lowWant && high == highWant {
			return p
		}
	}
	return nil
}

func (r *PairingRepository) GetByID(_ context.Context, id string) (*domain.Pairing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pairings[id]
	if !ok {
		return nil, domain.ErrPairingNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *PairingRepository) GetActiveByUsers(_ context.Context, userA, userB string) (*domain.Pairing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.activeLocked(userA, userB); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrPairingNotFound
}

func (r *PairingRepository) ListForUser(_ context.Context, userID string, status *domain.PairingStatus) ([]*domain.Pairing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Pairing
	for _, p := range r.pairings {
		if !p.HasParticipant(userID) {
			continue
		}
		if status != nil && p.Status != *status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *PairingRepository) ListActivePartnerIDs(_ context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, p := range r.pairings {
		if p.Status == domain.PairingDeclined || !p.HasParticipant(userID) {
			continue
		}
		if other, ok := p.CounterpartID(userID); ok {
			ids = append(ids, other)
		}
	}
	return ids, nil
}

func (r *PairingRepository) UpdateStatus(_ context.Context, id string, from, to domain.PairingStatus) (*domain.Pairing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pairings[id]
	if !ok || p.Status != from {
		return nil, domain.ErrPairingNotPending
	}
	p.Status = to
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *PairingRepository) UpdateIcebreakers(_ context.Context, id string, icebreakers []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pairings[id]
	if !ok {
		return domain.ErrPairingNotFound
	}
	p.Icebreakers = append([]string(nil), icebreakers...)
	return nil
}

type MessageRepository struct {
	mu       sync.Mutex
	messages map[string][]*domain.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{messages: make(map[string][]*domain.Message)}
}

func (r *MessageRepository) Append(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log := r.messages[msg.PairingID]
	msg.Seq = int64(len(log)) + 1
	msg.CreatedAt = time.Now()
	cp := *msg
	r.messages[msg.PairingID] = append(log, &cp)
	return nil
}

func (r *MessageRepository) ListByPairing(_ context.Context, pairingID string) ([]*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log := r.messages[pairingID]
	out := make([]*domain.Message, 0, len(log))
	for _, m := range log {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

var (
	_ repository.ProfileRepository = (*ProfileRepository)(nil)
	_ repository.PairingRepository = (*PairingRepository)(nil)
	_ repository.MessageRepository = (*MessageRepository)(nil)
)
