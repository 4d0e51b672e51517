package handler

import (
	"net/http"

	"github.com/fitpair/fitpair-backend/internal/usecase/matching"
	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	finder *matching.CandidateFinder
}

func NewCandidateHandler(finder *matching.CandidateFinder) *CandidateHandler {
	return &CandidateHandler{finder: finder}
}

// GetCandidates handles GET /partners/candidates. No eligible candidates
// is an empty list, not an error.
func (h *CandidateHandler) GetCandidates(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	candidates, err := h.finder.FindCandidates(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}
