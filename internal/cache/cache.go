package cache

import (
	"context"
	"log/slog"
	"time"

	"unlocode/internal/types"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL is the expiry window after which a cached country dataset is
// discarded and reloaded.
const DefaultTTL = 24 * time.Hour

// Loader reads one country's persisted dataset. An error means the dataset is
// unavailable (missing file, parse failure); the cache turns it into absence.
type Loader func(ctx context.Context, country string) ([]*types.Record, error)

// Cache keeps at most one dataset per country key, each no older than the
// expiry window: an expired entry is never returned, a missing or expired one
// is reloaded on access. Concurrent first accesses for the same country may
// each trigger a load; loads are idempotent, so the duplicates are harmless.
type Cache struct {
	entries *expirable.LRU[string, []*types.Record]
	load    Loader
	logger  *slog.Logger
}

func New(ttl time.Duration, load Loader, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		// Size 0 keeps the cache unbounded; only the TTL evicts.
		entries: expirable.NewLRU[string, []*types.Record](0, nil, ttl),
		load:    load,
		logger:  logger.With("component", "dataset-cache"),
	}
}

// GetOrLoad returns the country's dataset, loading it when absent or expired.
// A loader failure reports (nil, false): the country is unknown, not broken.
func (c *Cache) GetOrLoad(ctx context.Context, country string) ([]*types.Record, bool) {
	if records, ok := c.entries.Get(country); ok {
		return records, true
	}

	records, err := c.load(ctx, country)
	if err != nil {
		c.logger.Debug("dataset unavailable", "country", country, "error", err)
		return nil, false
	}

	c.entries.Add(country, records)
	c.logger.Debug("dataset loaded", "country", country, "records", len(records))

	return records, true
}
