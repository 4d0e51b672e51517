package rediscache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

// ScoreCache stores computed compatibility scores keyed by normalized
// user pair. Entries expire so attribute edits are picked up without
// explicit invalidation.
type ScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScoreCache(client *redis.Client, ttl time.Duration) repository.ScoreCache {
	return &ScoreCache{client: client, ttl: ttl}
}

func (c *ScoreCache) key(userA, userB string) string {
	low, high := domain.PairKey(userA, userB)
	return fmt.Sprintf("compat:%s:%s", low, high)
}

func (c *ScoreCache) Get(ctx context.Context, userA, userB string) (int, bool, error) {
	val, err := c.client.Get(ctx, c.key(userA, userB)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, nil
	}
	return score, true, nil
}

func (c *ScoreCache) Set(ctx context.Context, userA, userB string, score int) error {
	return c.client.Set(ctx, c.key(userA, userB), strconv.Itoa(score), c.ttl).Err()
}
