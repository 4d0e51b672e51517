package domain

import "errors"

// Sentinel errors returned by use cases and repositories. Handlers map
// them onto HTTP statuses; callers dispatch with errors.Is.
var (
	// Invalid input.
	ErrSelfPairing     = errors.New("cannot pair with yourself")
	ErrEmptyMessage    = errors.New("message content is empty")
	ErrInvalidDecision = errors.New("decision must be accept or decline")

	// Unknown entities.
	ErrProfileNotFound = errors.New("profile not found")
	ErrPairingNotFound = errors.New("pairing not found")

	// Wrong actor.
	ErrNotRecipient   = errors.New("only the recipient may respond to a pairing")
	ErrNotParticipant = errors.New("user is not a participant of this pairing")

	// State-machine preconditions.
	ErrPairingExists      = errors.New("an active pairing already exists for this pair")
	ErrPairingNotPending  = errors.New("pairing is no longer pending")
	ErrPairingNotAccepted = errors.New("pairing is not accepted")

	// Backing store failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)
