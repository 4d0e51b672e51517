package handler

import (
	"net/http"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/usecase/pairing"
	"github.com/gin-gonic/gin"
)

type PairingHandler struct {
	pairingUseCase *pairing.UseCase
}

func NewPairingHandler(pairingUseCase *pairing.UseCase) *PairingHandler {
	return &PairingHandler{pairingUseCase: pairingUseCase}
}

// ProposeRequest represents a pairing proposal
type ProposeRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
}

// RespondRequest carries the recipient's decision
type RespondRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept decline"`
}

// Propose handles POST /pairings
func (h *PairingHandler) Propose(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req ProposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.pairingUseCase.Propose(c.Request.Context(), userID, req.RecipientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// Respond handles POST /pairings/:pairing_id/respond
func (h *PairingHandler) Respond(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.pairingUseCase.Respond(c.Request.Context(), c.Param("pairing_id"), userID, req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// List handles GET /pairings?status=
func (h *PairingHandler) List(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var statusFilter *domain.PairingStatus
	if raw := c.Query("status"); raw != "" {
		status, valid := domain.ParsePairingStatus(raw)
		if !valid {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
			return
		}
		statusFilter = &status
	}

	views, err := h.pairingUseCase.ListForUser(c.Request.Context(), userID, statusFilter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pairings": views})
}
