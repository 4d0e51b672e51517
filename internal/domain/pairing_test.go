package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairingStatusTerminal(t *testing.T) {
	assert.False(t, PairingPending.Terminal())
	assert.True(t, PairingAccepted.Terminal())
	assert.True(t, PairingDeclined.Terminal())
}

func TestParsePairingStatus(t *testing.T) {
	s, ok := ParsePairingStatus("accepted")
	assert.True(t, ok)
	assert.Equal(t, PairingAccepted, s)

	_, ok = ParsePairingStatus("cancelled")
	assert.False(t, ok)
}

func TestPairingCounterpart(t *testing.T) {
	p := &Pairing{RequesterID: "u1", RecipientID: "u2"}

	other, ok := p.CounterpartID("u1")
	assert.True(t, ok)
	assert.Equal(t, "u2", other)

	other, ok = p.CounterpartID("u2")
	assert.True(t, ok)
	assert.Equal(t, "u1", other)

	_, ok = p.CounterpartID("u3")
	assert.False(t, ok)
	assert.False(t, p.HasParticipant("u3"))
	assert.True(t, p.HasParticipant("u1"))
}

func TestPairKeyNormalizes(t *testing.T) {
	a, b := PairKey("u9", "u1")
	assert.Equal(t, "u1", a)
	assert.Equal(t, "u9", b)

	a2, b2 := PairKey("u1", "u9")
	assert.Equal(t, a, a2)
	assert.Equal(t, b, b2)
}
