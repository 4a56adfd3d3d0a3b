package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/safespacehq/safespace-service/internal/types"
)

// CommentCache keeps generated supportive comments around for a short while
// so repeated requests for the same story and tone don't hit the model again.
// Stories never change after publication, so a cached comment stays apt; the
// TTL only bounds memory, not correctness.
type CommentCache struct {
	redis *redis.Client
}

// Cache key pattern
const commentKey = "comment:%s:%s" // comment:storyID:tone

// Cache duration
const commentCacheDuration = 10 * time.Minute

// NewCommentCache wraps a redis client. A nil client disables caching: Get
// always misses and Set is a no-op.
func NewCommentCache(redisClient *redis.Client) *CommentCache {
	return &CommentCache{redis: redisClient}
}

// Get returns the cached comment for a story and tone, if present.
func (c *CommentCache) Get(ctx context.Context, storyID string, tone types.CommentTone) (string, bool) {
	if c.redis == nil {
		return "", false
	}

	key := fmt.Sprintf(commentKey, storyID, tone)
	cached, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return cached, true
}

// Set caches a generated comment.
func (c *CommentCache) Set(ctx context.Context, storyID string, tone types.CommentTone, comment string) {
	if c.redis == nil {
		return
	}

	key := fmt.Sprintf(commentKey, storyID, tone)
	c.redis.Set(ctx, key, comment, commentCacheDuration)
}
