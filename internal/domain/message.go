package domain

import "time"

// Message is one entry in a pairing's conversation log. Messages are
// immutable; Seq is assigned by the store, strictly increasing within a
// pairing, and is the ordering key (created_at alone can tie).
type Message struct {
	ID        string    `json:"id" db:"id"`
	PairingID string    `json:"pairing_id" db:"pairing_id"`
	SenderID  string    `json:"sender_id" db:"sender_id"`
	Content   string    `json:"content" db:"content"`
	Seq       int64     `json:"seq" db:"seq"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
