package repository

import (
	"context"
	"fmt"
	"time"

	"stock-genius/internal/dto"
	"stock-genius/pkg/cache"
	"stock-genius/pkg/common"
)

// cachedStockDataRepository keeps successful provider documents for a
// short time. Failures are never cached.
type cachedStockDataRepository struct {
	next  StockDataRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedStockDataRepository(next StockDataRepository, c cache.Cache, ttl time.Duration) StockDataRepository {
	return &cachedStockDataRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func (r *cachedStockDataRepository) FetchChart(ctx context.Context, symbol, rangeParam, interval string) (dto.Document, error) {
	key := fmt.Sprintf(common.KEY_CHART, symbol, rangeParam, interval)
	return r.load(key, func() (dto.Document, error) {
		return r.next.FetchChart(ctx, symbol, rangeParam, interval)
	})
}

func (r *cachedStockDataRepository) FetchInsights(ctx context.Context, symbol string) (dto.Document, error) {
	return r.load(fmt.Sprintf(common.KEY_INSIGHTS, symbol), func() (dto.Document, error) {
		return r.next.FetchInsights(ctx, symbol)
	})
}

func (r *cachedStockDataRepository) FetchProfile(ctx context.Context, symbol string) (dto.Document, error) {
	return r.load(fmt.Sprintf(common.KEY_PROFILE, symbol), func() (dto.Document, error) {
		return r.next.FetchProfile(ctx, symbol)
	})
}

func (r *cachedStockDataRepository) load(key string, fetch func() (dto.Document, error)) (dto.Document, error) {
	if doc, ok := cache.GetFromCache[dto.Document](r.cache, key); ok {
		return doc, nil
	}

	doc, err := fetch()
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, doc, r.ttl)
	return doc, nil
}
