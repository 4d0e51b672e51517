package handler

import (
	"net/http"

	"github.com/fitpair/fitpair-backend/internal/usecase/conversation"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	conversationUseCase *conversation.UseCase
}

func NewMessageHandler(conversationUseCase *conversation.UseCase) *MessageHandler {
	return &MessageHandler{conversationUseCase: conversationUseCase}
}

// PostMessageRequest represents a new conversation message
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Post handles POST /pairings/:pairing_id/messages
func (h *MessageHandler) Post(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	msg, err := h.conversationUseCase.Post(c.Request.Context(), c.Param("pairing_id"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// List handles GET /pairings/:pairing_id/messages
func (h *MessageHandler) List(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	messages, err := h.conversationUseCase.List(c.Request.Context(), c.Param("pairing_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
