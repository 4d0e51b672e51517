package postgres

import (
	"context"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Append assigns the next per-pairing sequence number in the insert
// itself. The conversation use case serializes appends per pairing, and
// the UNIQUE (pairing_id, seq) constraint rejects any writer that slips
// past that lock.
func (r *messageRepository) Append(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, pairing_id, sender_id, content, seq)
		VALUES ($1, $2, $3, $4,
		        COALESCE((SELECT MAX(seq) FROM messages WHERE pairing_id = $2), 0) + 1)
		RETURNING seq, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		msg.ID, msg.PairingID, msg.SenderID, msg.Content,
	).Scan(&msg.Seq, &msg.CreatedAt)
}

func (r *messageRepository) ListByPairing(ctx context.Context, pairingID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT id, pairing_id, sender_id, content, seq, created_at
		FROM messages
		WHERE pairing_id = $1
		ORDER BY seq
	`
	err := r.db.SelectContext(ctx, &messages, query, pairingID)
	return messages, err
}
