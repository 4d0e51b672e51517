package container

import (
	"fmt"

	"github.com/fitpair/fitpair-backend/internal/config"
	httpdelivery "github.com/fitpair/fitpair-backend/internal/delivery/http"
	"github.com/fitpair/fitpair-backend/internal/delivery/http/handler"
	"github.com/fitpair/fitpair-backend/internal/delivery/http/middleware"
	"github.com/fitpair/fitpair-backend/internal/infrastructure/database"
	"github.com/fitpair/fitpair-backend/internal/infrastructure/gemini"
	"github.com/fitpair/fitpair-backend/internal/infrastructure/server"
	"github.com/fitpair/fitpair-backend/internal/repository"
	"github.com/fitpair/fitpair-backend/internal/repository/postgres"
	"github.com/fitpair/fitpair-backend/internal/repository/rediscache"
	"github.com/fitpair/fitpair-backend/internal/usecase/conversation"
	"github.com/fitpair/fitpair-backend/internal/usecase/matching"
	"github.com/fitpair/fitpair-backend/internal/usecase/pairing"
	"github.com/fitpair/fitpair-backend/internal/usecase/profile"
	"github.com/fitpair/fitpair-backend/pkg/keylock"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional: without it every score is just recomputed.
	var scoreCache repository.ScoreCache
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, score caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		scoreCache = rediscache.NewScoreCache(redisClient, cfg.Matching.ScoreCacheTTL)
	}

	// Gemini is optional too; pairings simply go without icebreakers.
	geminiClient, err := gemini.NewClient(cfg.GeminiAPIKey)
	if err != nil {
		logger.Warn("gemini unavailable, icebreaker suggestions disabled", zap.Error(err))
		geminiClient = nil
	}

	// Repositories
	profileRepo := postgres.NewProfileRepository(db)
	pairingRepo := postgres.NewPairingRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	// Shared primitives
	scorer := matching.NewScorer(matching.Weights{
		FitnessGoal:  cfg.Matching.GoalWeight,
		WorkoutType:  cfg.Matching.WorkoutWeight,
		Availability: cfg.Matching.AvailabilityWeight,
		Location:     cfg.Matching.LocationWeight,
	})
	locks := keylock.New()

	// Use cases
	profileUseCase := profile.NewUseCase(profileRepo)
	candidateFinder := matching.NewCandidateFinder(profileRepo, pairingRepo, scorer, scoreCache, logger)
	pairingUseCase := pairing.NewUseCase(profileRepo, pairingRepo, scorer, locks, geminiClient, logger)
	conversationUseCase := conversation.NewUseCase(pairingRepo, messageRepo, locks)

	// Handlers
	profileHandler := handler.NewProfileHandler(profileUseCase)
	candidateHandler := handler.NewCandidateHandler(candidateFinder)
	pairingHandler := handler.NewPairingHandler(pairingUseCase)
	messageHandler := handler.NewMessageHandler(conversationUseCase)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)

	router := httpdelivery.NewRouter(
		profileHandler,
		candidateHandler,
		pairingHandler,
		messageHandler,
		authMiddleware,
	)

	srv := server.NewServer(&cfg.Server, router.Setup())

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
