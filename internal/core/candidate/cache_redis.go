package candidate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hirevine/hirevine/internal/platform/constants"
)

const detailCacheTTL = 10 * time.Minute

// RedisDetailCache caches candidate detail payloads in Redis. Keys embed the
// organization id, so a cached entry can never leak across tenants even if
// two organizations hold candidates with the same id prefix.
type RedisDetailCache struct {
	client *redis.Client
}

func NewRedisDetailCache(client *redis.Client) *RedisDetailCache {
	return &RedisDetailCache{client: client}
}

func detailKey(organizationID, candidateID string) string {
	return constants.RedisPrefixCandidateDetail + organizationID + ":" + candidateID
}

func (cache *RedisDetailCache) Get(ctx context.Context, organizationID, candidateID string) (*Candidate, bool) {
	payload, err := cache.client.Get(ctx, detailKey(organizationID, candidateID)).Bytes()
	if err != nil {
		return nil, false
	}

	c := &Candidate{}
	if err := json.Unmarshal(payload, c); err != nil {
		return nil, false
	}
	return c, true
}

func (cache *RedisDetailCache) Set(ctx context.Context, organizationID string, c *Candidate) {
	payload, err := json.Marshal(c)
	if err != nil {
		return
	}
	_ = cache.client.Set(ctx, detailKey(organizationID, c.ID), payload, detailCacheTTL).Err()
}

func (cache *RedisDetailCache) Invalidate(ctx context.Context, organizationID, candidateID string) {
	_ = cache.client.Del(ctx, detailKey(organizationID, candidateID)).Err()
}
