package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// EngagementCache caches per-user completed-question counts so the weekly
// batch does not hammer the store with count queries. Invalidated whenever a
// completion is recorded.
type EngagementCache interface {
	GetCount(ctx context.Context, userID string) (int, bool, error)
	SetCount(ctx context.Context, userID string, count int) error
	Invalidate(ctx context.Context, userID string) error
}

type engagementCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEngagementCache creates a new engagement cache
func NewEngagementCache(client *redis.Client) EngagementCache {
	return &engagementCache{
		client: client,
		ttl:    6 * time.Hour,
	}
}

func (c *engagementCache) key(userID string) string {
	return fmt.Sprintf("user:%s:completed", userID)
}

func (c *engagementCache) GetCount(ctx context.Context, userID string) (int, bool, error) {
	value, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func (c *engagementCache) SetCount(ctx context.Context, userID string, count int) error {
	return c.client.Set(ctx, c.key(userID), count, c.ttl).Err()
}

func (c *engagementCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
