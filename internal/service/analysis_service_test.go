package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-genius/internal/analyzer"
	"stock-genius/internal/dto"
	"stock-genius/pkg/logger"
)

var (
	chartDoc    = dto.Document(`{"chart":{"result":[{"meta":{"currency":"USD","regularMarketPrice":110},"indicators":{"quote":[{"close":[100,110]}]}}],"error":null}}`)
	insightsDoc = dto.Document(`{"finance":{"result":{
		"instrumentInfo":{"technicalEvents":{"longTermOutlook":{"score":4}},"valuation":{"color":3}},
		"companySnapshot":{"company":{"innovativeness":5}},
		"recommendation":{"rating":"Buy"},
		"sigDevs":[{"headline":"Board approves spin-off of cloud unit"}]
	}}}`)
	profileDoc = dto.Document(`{"quoteSummary":{"result":[{"price":{"longName":"Acme Corp"},"assetProfile":{"sector":"Technology"}}]}}`)
	fixedNow   = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
)

type fakeStockDataRepo struct {
	mu         sync.Mutex
	chart      dto.Document
	insights   dto.Document
	profile    dto.Document
	chartErr   error
	insightErr error
	profileErr error
	chartArgs  []string
	calls      int
	barrier    *sync.WaitGroup
}

func (f *fakeStockDataRepo) enter() error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.barrier == nil {
		return nil
	}
	f.barrier.Done()
	done := make(chan struct{})
	go func() {
		f.barrier.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-time.After(2 * time.Second):
		return errors.New("fetches were not issued concurrently")
	}
}

func (f *fakeStockDataRepo) FetchChart(ctx context.Context, symbol, rangeParam, interval string) (dto.Document, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.chartArgs = []string{symbol, rangeParam, interval}
	f.mu.Unlock()
	return f.chart, f.chartErr
}

func (f *fakeStockDataRepo) FetchInsights(ctx context.Context, symbol string) (dto.Document, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	return f.insights, f.insightErr
}

func (f *fakeStockDataRepo) FetchProfile(ctx context.Context, symbol string) (dto.Document, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	return f.profile, f.profileErr
}

func newTestService(repo *fakeStockDataRepo) *analysisService {
	svc := NewAnalysisService(logger.NewNop(), repo).(*analysisService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestAnalyze_FullData(t *testing.T) {
	repo := &fakeStockDataRepo{chart: chartDoc, insights: insightsDoc, profile: profileDoc}
	svc := newTestService(repo)

	resp := svc.Analyze(context.Background(), dto.AnalysisRequest{Symbol: "ACME", Months: 12})

	assert.Equal(t, []string{"ACME", "1y", "1wk"}, repo.chartArgs)
	assert.Equal(t, 3, repo.calls)

	assert.Equal(t, "ACME", resp.Symbol)
	assert.Equal(t, 12, resp.Months)
	assert.Equal(t, fixedNow, resp.Timestamp)
	assert.False(t, resp.Degraded)
	assert.Empty(t, resp.UnavailableSources)

	// roc 4*15+5*5=85, ey 3*15+25=70, composite 77.5
	assert.Equal(t, dto.LabelBuy, resp.Recommendation)
	assert.Equal(t, 77.5, resp.Confidence)
	require.NotNil(t, resp.ScoreResult)
	assert.Equal(t, 77.5, resp.ScoreResult.CompositeScore)
	require.NotNil(t, resp.SpecialSituation)
	assert.Equal(t, dto.SituationSpinOff, resp.SpecialSituation.Kind)
	assert.Equal(t, 25, resp.SpecialSituation.Confidence)
	assert.Equal(t, []string{
		"Special situation detected: Spin-off (Potential spin-off detected based on news and/or SEC filings)",
		"High Magic Formula score: 77.50",
	}, resp.Reasons)

	require.NotNil(t, resp.Price)
	assert.Equal(t, "USD", resp.Price.Currency)
	require.NotNil(t, resp.Price.ChangePercent)
	assert.InDelta(t, 10.0, *resp.Price.ChangePercent, 1e-9)
	require.NotNil(t, resp.Company)
	assert.Equal(t, "Acme Corp", resp.Company.Name)
}

func TestAnalyze_AllFetchesFail(t *testing.T) {
	upstream := errors.New("connection refused")
	repo := &fakeStockDataRepo{chartErr: upstream, insightErr: upstream, profileErr: upstream}
	svc := newTestService(repo)

	resp := svc.Analyze(context.Background(), dto.AnalysisRequest{Symbol: "ACME", Months: 3})

	assert.Equal(t, []string{"ACME", "3mo", "1d"}, repo.chartArgs)
	assert.True(t, resp.Degraded)
	assert.Equal(t, []string{"chart", "insights", "profile"}, resp.UnavailableSources)

	// Both proxies unknown: (25 + 15) / 2 = 20.
	require.NotNil(t, resp.ScoreResult)
	assert.Equal(t, 20.0, resp.ScoreResult.CompositeScore)
	assert.Nil(t, resp.ScoreResult.CapitalReturnProxy)
	assert.Nil(t, resp.ScoreResult.EarningsYieldProxy)
	assert.Equal(t, dto.LabelSell, resp.Recommendation)
	assert.Equal(t, 80.0, resp.Confidence)
	assert.Equal(t, []string{
		"Low Magic Formula score: 20.00",
		"Partial data: chart, insights, profile unavailable from provider, neutral defaults used",
	}, resp.Reasons)
	assert.Nil(t, resp.Price)
	assert.Nil(t, resp.Company)
}

func TestAnalyze_PartialFailure(t *testing.T) {
	repo := &fakeStockDataRepo{chart: chartDoc, insights: insightsDoc, profileErr: errors.New("429")}
	svc := newTestService(repo)

	resp := svc.Analyze(context.Background(), dto.AnalysisRequest{Symbol: "ACME", Months: 12})

	assert.True(t, resp.Degraded)
	assert.Equal(t, []string{"profile"}, resp.UnavailableSources)
	assert.Equal(t, dto.LabelBuy, resp.Recommendation)
	assert.Nil(t, resp.Company)
	assert.NotNil(t, resp.Price)
}

func TestAnalyze_NilDocumentWithoutErrorIsUnavailable(t *testing.T) {
	repo := &fakeStockDataRepo{chart: chartDoc, insights: nil, profile: profileDoc}
	svc := newTestService(repo)

	resp := svc.Analyze(context.Background(), dto.AnalysisRequest{Symbol: "ACME", Months: 12})
	assert.Equal(t, []string{"insights"}, resp.UnavailableSources)
}

func TestAnalyze_PanicFallsBackToHold(t *testing.T) {
	repo := &fakeStockDataRepo{chart: chartDoc, insights: insightsDoc, profile: profileDoc}
	svc := newTestService(repo)
	svc.evaluate = func(dto.Document) analyzer.Report {
		panic("kaboom")
	}

	resp := svc.Analyze(context.Background(), dto.AnalysisRequest{Symbol: "ACME", Months: 12})

	assert.Equal(t, dto.LabelHold, resp.Recommendation)
	assert.Equal(t, 0.0, resp.Confidence)
	assert.Equal(t, []string{"error analyzing stock: kaboom"}, resp.Reasons)
	assert.Nil(t, resp.ScoreResult)
	assert.Nil(t, resp.SpecialSituation)
	assert.Nil(t, resp.Price)
	assert.Equal(t, "ACME", resp.Symbol)
	assert.Equal(t, fixedNow, resp.Timestamp)
}

func TestAnalyze_FetchesRunConcurrently(t *testing.T) {
	barrier := &sync.WaitGroup{}
	barrier.Add(3)
	repo := &fakeStockDataRepo{chart: chartDoc, insights: insightsDoc, profile: profileDoc, barrier: barrier}
	svc := newTestService(repo)

	resp := svc.Analyze(context.Background(), dto.AnalysisRequest{Symbol: "ACME", Months: 12})

	assert.False(t, resp.Degraded, "all three fetches must be in flight together")
}

func TestGetChart_Defaults(t *testing.T) {
	repo := &fakeStockDataRepo{chart: chartDoc}
	svc := newTestService(repo)

	doc, err := svc.GetChart(context.Background(), dto.GetStockChartParam{Symbol: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, chartDoc, doc)
	assert.Equal(t, []string{"ACME", "1y", "1d"}, repo.chartArgs)

	_, err = svc.GetChart(context.Background(), dto.GetStockChartParam{Symbol: "ACME", Range: "5d", Interval: "1h"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ACME", "5d", "1h"}, repo.chartArgs)
}

func TestPassthroughErrors(t *testing.T) {
	upstream := errors.New("provider returned status 404 for insights")
	repo := &fakeStockDataRepo{chartErr: upstream, insightErr: upstream, profileErr: upstream}
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.GetChart(ctx, dto.GetStockChartParam{Symbol: "ZZZZ"})
	assert.ErrorIs(t, err, upstream)
	assert.EqualError(t, err, "error fetching stock chart data: provider returned status 404 for insights")

	_, err = svc.GetInsights(ctx, "ZZZZ")
	assert.ErrorIs(t, err, upstream)

	_, err = svc.GetProfile(ctx, "ZZZZ")
	assert.ErrorIs(t, err, upstream)
}
