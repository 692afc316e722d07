package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stock-genius/config"
	"stock-genius/internal/dto"
	"stock-genius/pkg/httpclient"
	"stock-genius/pkg/jsonpath"
	"stock-genius/pkg/logger"

	"golang.org/x/time/rate"
)

// One analysis fans out three calls at once.
const requestBurst = 3

const maxLoggedBody = 512

// StockDataRepository reads raw documents from the market data provider.
// Every call is independent; callers decide how to degrade on failure.
type StockDataRepository interface {
	FetchChart(ctx context.Context, symbol, rangeParam, interval string) (dto.Document, error)
	FetchInsights(ctx context.Context, symbol string) (dto.Document, error)
	FetchProfile(ctx context.Context, symbol string) (dto.Document, error)
}

type yahooFinanceRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewYahooFinanceRepository creates a provider client throttled to
// provider.max_request_per_minute.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) StockDataRepository {
	return newYahooFinanceRepository(cfg, log, httpclient.New(cfg.Provider.BaseURL, cfg.Provider.Timeout, cfg.Provider.APIKey))
}

func newYahooFinanceRepository(cfg *config.Config, log *logger.Logger, client httpclient.HTTPClient) *yahooFinanceRepository {
	perRequest := time.Minute / time.Duration(cfg.Provider.MaxRequestPerMinute)

	return &yahooFinanceRepository{
		httpClient:     client,
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(perRequest), requestBurst),
	}
}

func (r *yahooFinanceRepository) FetchChart(ctx context.Context, symbol, rangeParam, interval string) (dto.Document, error) {
	endpoint := r.cfg.Provider.ChartPath + "/" + url.PathEscape(symbol)
	queryParams := map[string]string{
		"range":                rangeParam,
		"interval":             interval,
		"includeAdjustedClose": "true",
		"region":               r.cfg.Provider.Region,
	}
	return r.get(ctx, dto.SourceChart, endpoint, queryParams)
}

func (r *yahooFinanceRepository) FetchInsights(ctx context.Context, symbol string) (dto.Document, error) {
	queryParams := map[string]string{
		"symbol": symbol,
	}
	return r.get(ctx, dto.SourceInsights, r.cfg.Provider.InsightsPath, queryParams)
}

func (r *yahooFinanceRepository) FetchProfile(ctx context.Context, symbol string) (dto.Document, error) {
	endpoint := r.cfg.Provider.ProfilePath + "/" + url.PathEscape(symbol)
	queryParams := map[string]string{
		"modules": "assetProfile,summaryProfile,price",
		"region":  r.cfg.Provider.Region,
		"lang":    r.cfg.Provider.Lang,
	}
	return r.get(ctx, dto.SourceProfile, endpoint, queryParams)
}

func (r *yahooFinanceRepository) get(ctx context.Context, source, endpoint string, queryParams map[string]string) (dto.Document, error) {
	if r.requestLimiter.Tokens() < 1 {
		r.logger.WarnContext(ctx, "Provider request limit reached, waiting for a token",
			logger.StringField("source", source),
			logger.IntField("max_request_per_minute", r.cfg.Provider.MaxRequestPerMinute),
		)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for provider rate limit: %w", err)
	}

	headers := map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         "https://finance.yahoo.com/",
	}

	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, headers, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from provider: %w", source, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Provider returned Non-OK status",
			logger.StringField("source", source),
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", truncate(string(resp.Body), maxLoggedBody)))
		return nil, fmt.Errorf("provider returned status %d for %s", resp.StatusCode, source)
	}

	if !jsonpath.Valid(resp.Body) {
		return nil, fmt.Errorf("provider returned invalid JSON for %s", source)
	}

	r.logger.DebugContext(ctx, "Provider document fetched",
		logger.StringField("source", source),
		logger.IntField("bytes", len(resp.Body)))

	return dto.Document(resp.Body), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
