package conversation

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository"
	"github.com/fitpair/fitpair-backend/pkg/keylock"
	"github.com/google/uuid"
)

// UseCase is the two-party conversation channel of an accepted pairing.
// Appends are serialized on the same per-pairing lock the lifecycle
// manager uses, so a pairing cannot be declined mid-append and sequence
// numbers never collide.
type UseCase struct {
	pairingRepo repository.PairingRepository
	messageRepo repository.MessageRepository
	locks       *keylock.KeyLock
}

func NewUseCase(
	pairingRepo repository.PairingRepository,
	messageRepo repository.MessageRepository,
	locks *keylock.KeyLock,
) *UseCase {
	return &UseCase{
		pairingRepo: pairingRepo,
		messageRepo: messageRepo,
		locks:       locks,
	}
}

// Post appends a message to the pairing's log. The sender must be a
// participant and the pairing must be accepted.
func (uc *UseCase) Post(ctx context.Context, pairingID, senderID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	unlock := uc.locks.Lock("pairing:" + pairingID)
	defer unlock()

	pairing, err := uc.pairingRepo.GetByID(ctx, pairingID)
	if err != nil {
		return nil, err
	}
	if !pairing.HasParticipant(senderID) {
		return nil, domain.ErrNotParticipant
	}
	if pairing.Status != domain.PairingAccepted {
		return nil, domain.ErrPairingNotAccepted
	}

	msg := &domain.Message{
		ID:        uuid.NewString(),
		PairingID: pairingID,
		SenderID:  senderID,
		Content:   content,
	}
	if err := uc.messageRepo.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// List returns the pairing's messages oldest first. Both participants
// may read regardless of the pairing's current status; only posting is
// gated on accepted.
func (uc *UseCase) List(ctx context.Context, pairingID, requesterID string) ([]*domain.Message, error) {
	pairing, err := uc.pairingRepo.GetByID(ctx, pairingID)
	if err != nil {
		return nil, err
	}
	if !pairing.HasParticipant(requesterID) {
		return nil, domain.ErrNotParticipant
	}

	messages, err := uc.messageRepo.ListByPairing(ctx, pairingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
