package pricing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/archfind/arch-backend/internal/design/costing"
	"github.com/archfind/arch-backend/internal/design/domain"
)

const (
	priceKeyPrefix = "price:" // price:{category}:{service} -> monthly USD
	priceTTL       = 24 * time.Hour
)

// CachedSource decorates a price source with a redis cache. Cache trouble is
// never surfaced as a pricing failure; it just falls through to the inner
// source.
type CachedSource struct {
	inner  costing.PriceSource
	client *redis.Client
}

func NewCachedSource(inner costing.PriceSource, client *redis.Client) *CachedSource {
	return &CachedSource{inner: inner, client: client}
}

func priceKey(category domain.ServiceCategory, service string) string {
	return fmt.Sprintf("%s%s:%s", priceKeyPrefix, category, service)
}

// MonthlyPrice implements costing.PriceSource.
func (c *CachedSource) MonthlyPrice(ctx context.Context, category domain.ServiceCategory, service string) (float64, bool, error) {
	key := priceKey(category, service)

	if val, err := c.client.Get(ctx, key).Result(); err == nil {
		if price, perr := strconv.ParseFloat(val, 64); perr == nil && price > 0 {
			return price, true, nil
		}
	} else if err != redis.Nil {
		// cache down: fall through to the inner source
	}

	price, ok, err := c.inner.MonthlyPrice(ctx, category, service)
	if err != nil || !ok {
		return price, ok, err
	}

	_ = c.client.Set(ctx, key, strconv.FormatFloat(price, 'f', -1, 64), priceTTL).Err()
	return price, true, nil
}

// Warm pre-populates the cache for the selections the selector can produce.
// Used by the nightly worker so request-path lookups stay hot.
func (c *CachedSource) Warm(ctx context.Context) error {
	targets := []struct {
		category domain.ServiceCategory
		service  string
	}{
		{domain.CategoryCompute, "Amazon EC2"},
	}

	var firstErr error
	for _, t := range targets {
		if _, _, err := c.MonthlyPrice(ctx, t.category, t.service); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
