package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reflekt/internal/model"
)

// SetCache caches each user's latest generated question set so the current
// endpoint serves the common read without touching the store
type SetCache interface {
	GetLatest(ctx context.Context, userID string) (*model.GeneratedQuestionSet, error)
	SetLatest(ctx context.Context, set *model.GeneratedQuestionSet) error
	Delete(ctx context.Context, userID string) error
}

type setCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSetCache creates a new question set cache
func NewSetCache(client *redis.Client) SetCache {
	return &setCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *setCache) key(userID string) string {
	return fmt.Sprintf("user:%s:questionset:latest", userID)
}

func (c *setCache) GetLatest(ctx context.Context, userID string) (*model.GeneratedQuestionSet, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var set model.GeneratedQuestionSet
	if err := json.Unmarshal([]byte(data), &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (c *setCache) SetLatest(ctx context.Context, set *model.GeneratedQuestionSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(set.UserID), data, c.ttl).Err()
}

func (c *setCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
