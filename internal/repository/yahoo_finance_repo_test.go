package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-genius/config"
	"stock-genius/internal/dto"
	"stock-genius/pkg/logger"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Provider: config.Provider{
			BaseURL:             baseURL,
			ChartPath:           "/v8/finance/chart",
			InsightsPath:        "/ws/insights/v2/finance/insights",
			ProfilePath:         "/v10/finance/quoteSummary",
			Timeout:             time.Second,
			MaxRequestPerMinute: 6000,
			Region:              "US",
			Lang:                "en-US",
		},
	}
}

type capturedRequest struct {
	path  string
	query url.Values
}

func newProviderServer(t *testing.T, status int, body string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = append(captured, capturedRequest{path: r.URL.Path, query: r.URL.Query()})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func TestYahooFinanceRepository_FetchChart(t *testing.T) {
	server, captured := newProviderServer(t, http.StatusOK, `{"chart":{"result":[{"meta":{"regularMarketPrice":189.5}}],"error":null}}`)
	repo := NewYahooFinanceRepository(testConfig(server.URL), logger.NewNop())

	doc, err := repo.FetchChart(context.Background(), "AAPL", "1y", "1wk")
	require.NoError(t, err)
	assert.JSONEq(t, `{"chart":{"result":[{"meta":{"regularMarketPrice":189.5}}],"error":null}}`, string(doc))

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, "/v8/finance/chart/AAPL", req.path)
	assert.Equal(t, "1y", req.query.Get("range"))
	assert.Equal(t, "1wk", req.query.Get("interval"))
	assert.Equal(t, "true", req.query.Get("includeAdjustedClose"))
	assert.Equal(t, "US", req.query.Get("region"))
}

func TestYahooFinanceRepository_FetchInsights(t *testing.T) {
	server, captured := newProviderServer(t, http.StatusOK, `{"finance":{"result":{"symbol":"MSFT"}}}`)
	repo := NewYahooFinanceRepository(testConfig(server.URL), logger.NewNop())

	doc, err := repo.FetchInsights(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"MSFT"`)

	require.Len(t, *captured, 1)
	assert.Equal(t, "/ws/insights/v2/finance/insights", (*captured)[0].path)
	assert.Equal(t, "MSFT", (*captured)[0].query.Get("symbol"))
}

func TestYahooFinanceRepository_FetchProfile(t *testing.T) {
	server, captured := newProviderServer(t, http.StatusOK, `{"quoteSummary":{"result":[]}}`)
	repo := NewYahooFinanceRepository(testConfig(server.URL), logger.NewNop())

	_, err := repo.FetchProfile(context.Background(), "BRK.B")
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, "/v10/finance/quoteSummary/BRK.B", req.path)
	assert.Equal(t, "assetProfile,summaryProfile,price", req.query.Get("modules"))
	assert.Equal(t, "en-US", req.query.Get("lang"))
}

func TestYahooFinanceRepository_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"not found", http.StatusNotFound, `{"chart":{"error":{"code":"Not Found"}}}`, "provider returned status 404 for insights"},
		{"rate limited", http.StatusTooManyRequests, `Too Many Requests`, "provider returned status 429 for insights"},
		{"invalid json", http.StatusOK, `<html>oops</html>`, "provider returned invalid JSON for insights"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newProviderServer(t, tt.status, tt.body)
			repo := NewYahooFinanceRepository(testConfig(server.URL), logger.NewNop())

			doc, err := repo.FetchInsights(context.Background(), "ZZZZ")
			assert.Nil(t, doc)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestYahooFinanceRepository_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	repo := NewYahooFinanceRepository(testConfig(baseURL), logger.NewNop())
	_, err := repo.FetchProfile(context.Background(), "AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch profile from provider")
}

func TestYahooFinanceRepository_CanceledContext(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	cfg.Provider.MaxRequestPerMinute = 1
	repo := NewYahooFinanceRepository(cfg, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchInsights(ctx, "AAPL")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
	assert.Equal(t, dto.Document(`{}`), dto.EmptyDocument)
}
