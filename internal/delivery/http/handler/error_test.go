package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{domain.ErrSelfPairing, http.StatusBadRequest, domain.ErrSelfPairing.Error()},
		{domain.ErrEmptyMessage, http.StatusBadRequest, domain.ErrEmptyMessage.Error()},
		{domain.ErrInvalidDecision, http.StatusBadRequest, domain.ErrInvalidDecision.Error()},
		{domain.ErrProfileNotFound, http.StatusNotFound, domain.ErrProfileNotFound.Error()},
		{domain.ErrPairingNotFound, http.StatusNotFound, domain.ErrPairingNotFound.Error()},
		{domain.ErrNotRecipient, http.StatusForbidden, domain.ErrNotRecipient.Error()},
		{domain.ErrNotParticipant, http.StatusForbidden, domain.ErrNotParticipant.Error()},
		{domain.ErrPairingExists, http.StatusConflict, domain.ErrPairingExists.Error()},
		{domain.ErrPairingNotPending, http.StatusConflict, domain.ErrPairingNotPending.Error()},
		{domain.ErrPairingNotAccepted, http.StatusConflict, domain.ErrPairingNotAccepted.Error()},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable, domain.ErrStoreUnavailable.Error()},
		{context.DeadlineExceeded, http.StatusServiceUnavailable, domain.ErrStoreUnavailable.Error()},
		{errors.New("something else"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, `{"error":"`+tc.message+`"}`, w.Body.String())
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		domain.ErrSelfPairing,
		domain.ErrEmptyMessage,
		domain.ErrInvalidDecision,
		domain.ErrProfileNotFound,
		domain.ErrPairingNotFound,
		domain.ErrNotRecipient,
		domain.ErrNotParticipant,
		domain.ErrPairingExists,
		domain.ErrPairingNotPending,
		domain.ErrPairingNotAccepted,
		domain.ErrStoreUnavailable,
	}
	for i, a := range sentinels {
		require.NotEmpty(t, a.Error())
		for _, b := range sentinels[i+1:] {
			assert.False(t, errors.Is(a, b), "%v and %v must not match", a, b)
		}
	}
}
