package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// pairings_active_pair_idx is the partial unique index on
// (LEAST(requester_id, recipient_id), GREATEST(requester_id, recipient_id))
// WHERE status IN ('pending', 'accepted'). It backstops the in-process
// pair lock against concurrent proposals.
const activePairConstraint = "pairings_active_pair_idx"

type pairingRepository struct {
	db *sqlx.DB
}

func NewPairingRepository(db *sqlx.DB) repository.PairingRepository {
	return &pairingRepository{db: db}
}

func (r *pairingRepository) Create(ctx context.Context, pairing *domain.Pairing) error {
	query := `
		INSERT INTO pairings (id, requester_id, recipient_id, status, compatibility_score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		pairing.ID, pairing.RequesterID, pairing.RecipientID,
		pairing.Status, pairing.CompatibilityScore,
	).Scan(&pairing.CreatedAt, &pairing.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == activePairConstraint:
				return domain.ErrPairingExists
			case pqErr.Code.Name() == "foreign_key_violation":
				return domain.ErrProfileNotFound
			}
		}
		return err
	}
	return nil
}

func (r *pairingRepository) GetByID(ctx context.Context, id string) (*domain.Pairing, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, requester_id, recipient_id, status, compatibility_score,
		       icebreakers, created_at, updated_at
		FROM pairings WHERE id = $1
	`, id)
	return scanPairing(row)
}

func (r *pairingRepository) GetActiveByUsers(ctx context.Context, userA, userB string) (*domain.Pairing, error) {
	low, high := domain.PairKey(userA, userB)
	row := r.db.QueryRowContext(ctx, `
		SELECT id, requester_id, recipient_id, status, compatibility_score,
		       icebreakers, created_at, updated_at
		FROM pairings
		WHERE LEAST(requester_id, recipient_id) = $1
		  AND GREATEST(requester_id, recipient_id) = $2
		  AND status IN ('pending', 'accepted')
	`, low, high)
	return scanPairing(row)
}

func (r *pairingRepository) ListForUser(ctx context.Context, userID string, status *domain.PairingStatus) ([]*domain.Pairing, error) {
	query := `
		SELECT id, requester_id, recipient_id, status, compatibility_score,
		       icebreakers, created_at, updated_at
		FROM pairings
		WHERE (requester_id = $1 OR recipient_id = $1)
	`
	args := []interface{}{userID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairings []*domain.Pairing
	for rows.Next() {
		p, err := scanPairing(rows)
		if err != nil {
			return nil, err
		}
		pairings = append(pairings, p)
	}
	return pairings, rows.Err()
}

func (r *pairingRepository) ListActivePartnerIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	query := `
		SELECT CASE WHEN requester_id = $1 THEN recipient_id ELSE requester_id END
		FROM pairings
		WHERE (requester_id = $1 OR recipient_id = $1)
		  AND status IN ('pending', 'accepted')
	`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}

func (r *pairingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.PairingStatus) (*domain.Pairing, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pairings
		SET status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND status = $3
		RETURNING id, requester_id, recipient_id, status, compatibility_score,
		          icebreakers, created_at, updated_at
	`, id, to, from)
	p, err := scanPairing(row)
	if errors.Is(err, domain.ErrPairingNotFound) {
		// The row exists but is no longer in `from`, or is gone entirely.
		// Both resolve to a state-machine conflict for the caller, who has
		// already verified existence.
		return nil, domain.ErrPairingNotPending
	}
	return p, err
}

func (r *pairingRepository) UpdateIcebreakers(ctx context.Context, id string, icebreakers []string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE pairings SET icebreakers = $2 WHERE id = $1
	`, id, pq.Array(icebreakers))
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPairingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPairing(row rowScanner) (*domain.Pairing, error) {
	var p domain.Pairing
	err := row.Scan(
		&p.ID, &p.RequesterID, &p.RecipientID, &p.Status, &p.CompatibilityScore,
		pq.Array(&p.Icebreakers), &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPairingNotFound
		}
		return nil, err
	}
	return &p, nil
}
