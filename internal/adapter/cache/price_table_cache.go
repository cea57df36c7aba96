package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	currentPriceTableKey = "cotador:price-table:current"
	// currentVersionKey is the highest version ever cached. It has no TTL and
	// survives Invalidate so an older snapshot can never be written back.
	currentVersionKey = "cotador:price-table:current:version"
)

// setIfNotOlder writes the snapshot unless a newer version was cached.
var setIfNotOlder = redis.NewScript(`
local cur = redis.call("GET", KEYS[2])
if cur and tonumber(cur) > tonumber(ARGV[1]) then
  return 0
end
if tonumber(ARGV[3]) > 0 then
  redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
else
  redis.call("SET", KEYS[1], ARGV[2])
end
redis.call("SET", KEYS[2], ARGV[1])
return 1
`)

// PriceTableCache keeps the current price table snapshot in Redis as JSON.
// A nil client turns every operation into a miss.
type PriceTableCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IPriceTableCache = (*PriceTableCache)(nil)

func NewPriceTableCache(client *redis.Client, ttl time.Duration) *PriceTableCache {
	return &PriceTableCache{client: client, ttl: ttl}
}

func (c *PriceTableCache) Get(ctx context.Context) (pricing.PriceTable, bool, error) {
	if c == nil || c.client == nil {
		return pricing.PriceTable{}, false, nil
	}
	data, err := c.client.Get(ctx, currentPriceTableKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pricing.PriceTable{}, false, nil
		}
		return pricing.PriceTable{}, false, err
	}
	var table pricing.PriceTable
	if err := json.Unmarshal(data, &table); err != nil {
		return pricing.PriceTable{}, false, err
	}
	return table, true, nil
}

// Set stores table as the current snapshot. A table older than the newest
// version already cached is dropped silently.
func (c *PriceTableCache) Set(ctx context.Context, table pricing.PriceTable) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	keys := []string{currentPriceTableKey, currentVersionKey}
	return setIfNotOlder.Run(ctx, c.client, keys, table.Version, data, c.ttl.Milliseconds()).Err()
}

// Invalidate drops the snapshot. The version mark is kept.
func (c *PriceTableCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, currentPriceTableKey).Err()
}
