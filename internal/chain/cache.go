package chain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const statusKeyPrefix = "chainnote:txstatus:"

// StatusCache keeps recent status lookups in redis so a burst of
// pending notes does not hammer the provider. A nil cache disables
// caching entirely.
type StatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatusCache(client *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *StatusCache) Get(ctx context.Context, txHash string) (TxStatus, bool) {
	if c == nil || c.client == nil {
		return TxStatus{}, false
	}

	raw, err := c.client.Get(ctx, statusKeyPrefix+txHash).Bytes()
	if err != nil {
		return TxStatus{}, false
	}

	var status TxStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return TxStatus{}, false
	}

	return status, true
}

func (c *StatusCache) Set(ctx context.Context, txHash string, status TxStatus) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(status)
	if err != nil {
		return
	}

	// best effort, a miss just costs one provider call
	c.client.Set(ctx, statusKeyPrefix+txHash, raw, c.ttl)
}
