package http

import (
	"github.com/fitpair/fitpair-backend/internal/delivery/http/handler"
	"github.com/fitpair/fitpair-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	profileHandler   *handler.ProfileHandler
	candidateHandler *handler.CandidateHandler
	pairingHandler   *handler.PairingHandler
	messageHandler   *handler.MessageHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	candidateHandler *handler.CandidateHandler,
	pairingHandler *handler.PairingHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		profileHandler:   profileHandler,
		candidateHandler: candidateHandler,
		pairingHandler:   pairingHandler,
		messageHandler:   messageHandler,
		authMiddleware:   authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(r.authMiddleware.RequireAuth())
	{
		profile := v1.Group("/profile")
		{
			profile.GET("/me", r.profileHandler.GetMyProfile)
			profile.PUT("/me", r.profileHandler.UpdateMyProfile)
			profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
		}

		partners := v1.Group("/partners")
		{
			partners.GET("/candidates", r.candidateHandler.GetCandidates)
		}

		pairings := v1.Group("/pairings")
		{
			pairings.POST("", r.pairingHandler.Propose)
			pairings.GET("", r.pairingHandler.List)
			pairings.POST("/:pairing_id/respond", r.pairingHandler.Respond)
			pairings.POST("/:pairing_id/messages", r.messageHandler.Post)
			pairings.GET("/:pairing_id/messages", r.messageHandler.List)
		}
	}

	return router
}
