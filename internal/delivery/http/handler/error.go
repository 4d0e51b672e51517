package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps the domain error taxonomy onto HTTP statuses:
// invalid input 400, unknown entity 404, wrong actor 403, state-machine
// precondition 409, store failure 503.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrSelfPairing),
		errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, domain.ErrInvalidDecision):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrPairingNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrNotRecipient),
		errors.Is(err, domain.ErrNotParticipant):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrPairingExists),
		errors.Is(err, domain.ErrPairingNotPending),
		errors.Is(err, domain.ErrPairingNotAccepted):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		message = domain.ErrStoreUnavailable.Error()
	}

	c.JSON(status, ErrorResponse{Error: message})
}

// actingUserID pulls the authenticated user id set by the auth
// middleware.
func actingUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return id, true
}
