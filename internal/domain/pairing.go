package domain

import "time"

type PairingStatus string

const (
	PairingPending  PairingStatus = "pending"
	PairingAccepted PairingStatus = "accepted"
	PairingDeclined PairingStatus = "declined"
)

// Terminal reports whether no further transition is allowed from s.
func (s PairingStatus) Terminal() bool {
	return s == PairingAccepted || s == PairingDeclined
}

// ParsePairingStatus validates a status string coming from the API layer.
func ParsePairingStatus(s string) (PairingStatus, bool) {
	switch PairingStatus(s) {
	case PairingPending, PairingAccepted, PairingDeclined:
		return PairingStatus(s), true
	}
	return "", false
}

// Pairing is the accountability-partner request between two users. The
// requester/recipient distinction is kept for auditing; uniqueness checks
// treat the pair as unordered. CompatibilityScore is frozen at proposal
// time and never recomputed.
type Pairing struct {
	ID                 string        `json:"id" db:"id"`
	RequesterID        string        `json:"requester_id" db:"requester_id"`
	RecipientID        string        `json:"recipient_id" db:"recipient_id"`
	Status             PairingStatus `json:"status" db:"status"`
	CompatibilityScore int           `json:"compatibility_score" db:"compatibility_score"`
	Icebreakers        []string      `json:"icebreakers,omitempty" db:"icebreakers"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

func (p *Pairing) HasParticipant(userID string) bool {
	return p.RequesterID == userID || p.RecipientID == userID
}

// CounterpartID returns the other participant of the pairing.
func (p *Pairing) CounterpartID(userID string) (string, bool) {
	if p.RequesterID == userID {
		return p.RecipientID, true
	}
	if p.RecipientID == userID {
		return p.RequesterID, true
	}
	return "", false
}

// PairKey normalizes two user ids into a stable (low, high) order, the
// key the uniqueness invariant is enforced on.
func PairKey(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
