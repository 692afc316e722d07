package cmd

import (
	"context"

	"stock-genius/config"
	"stock-genius/pkg/cache"
	"stock-genius/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	var inmemoryCache cache.Cache
	if cfg.Cache.Enabled {
		inmemoryCache = cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval)
		log.Info("Provider document cache enabled", logger.DurationField("ttl", cfg.Cache.DefaultExpiration))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		echo:      e,
		cache:     inmemoryCache,
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	if d.cache != nil {
		d.cache.Flush()
	}
	// Sync fails on stdout/stderr on some platforms, nothing to do about it.
	_ = d.log.Sync()
	return nil
}
