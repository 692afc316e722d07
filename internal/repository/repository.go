package repository

import (
	"stock-genius/config"
	"stock-genius/pkg/cache"
	"stock-genius/pkg/logger"
)

type Repository struct {
	StockDataRepo StockDataRepository
}

// NewRepository wires the provider client. When cache is non-nil the
// client is wrapped with the document cache.
func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) *Repository {
	stockDataRepo := NewYahooFinanceRepository(cfg, log)
	if inmemoryCache != nil {
		stockDataRepo = NewCachedStockDataRepository(stockDataRepo, inmemoryCache, cfg.Cache.DefaultExpiration)
	}

	return &Repository{
		StockDataRepo: stockDataRepo,
	}
}
