// Package cache implements Redis-backed caching adapters.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
)

const recommendationKeyPrefix = "recommendations:"

// cachedRecommendation is the Redis wire representation of a recommendation.
type cachedRecommendation struct {
	TagID   uuid.UUID `json:"tag_id"`
	TagName string    `json:"tag_name"`
	Score   float64   `json:"score"`
}

// recommendationCache implements adapter.RecommendationCache on Redis.
type recommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecommendationCache creates a new Redis-backed recommendation cache.
func NewRecommendationCache(client *redis.Client, ttl time.Duration) adapter.RecommendationCache {
	return &recommendationCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached recommendations for the seed tag, if present.
func (c *recommendationCache) Get(ctx context.Context, seedTagID uuid.UUID) ([]entity.Recommendation, bool, error) {
	payload, err := c.client.Get(ctx, recommendationKey(seedTagID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cached []cachedRecommendation
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false, err
	}

	recommendations := make([]entity.Recommendation, len(cached))
	for i, cr := range cached {
		recommendations[i] = entity.Recommendation{
			TagID:   cr.TagID,
			TagName: cr.TagName,
			Score:   cr.Score,
		}
	}
	return recommendations, true, nil
}

// Set stores the recommendations for the seed tag with the configured TTL.
func (c *recommendationCache) Set(ctx context.Context, seedTagID uuid.UUID, recommendations []entity.Recommendation) error {
	cached := make([]cachedRecommendation, len(recommendations))
	for i, rec := range recommendations {
		cached[i] = cachedRecommendation{
			TagID:   rec.TagID,
			TagName: rec.TagName,
			Score:   rec.Score,
		}
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, recommendationKey(seedTagID), payload, c.ttl).Err()
}

// Invalidate drops cached entries for every given tag.
func (c *recommendationCache) Invalidate(ctx context.Context, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	keys := make([]string, len(tagIDs))
	for i, id := range tagIDs {
		keys[i] = recommendationKey(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

func recommendationKey(seedTagID uuid.UUID) string {
	return recommendationKeyPrefix + seedTagID.String()
}
