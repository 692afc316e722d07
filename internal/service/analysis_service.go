package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock-genius/internal/analyzer"
	"stock-genius/internal/dto"
	"stock-genius/internal/repository"
	"stock-genius/pkg/logger"
	"stock-genius/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AnalysisService interface {
	GetChart(ctx context.Context, param dto.GetStockChartParam) (dto.Document, error)
	GetInsights(ctx context.Context, symbol string) (dto.Document, error)
	GetProfile(ctx context.Context, symbol string) (dto.Document, error)
	// Analyze always produces a response. Provider failures degrade to empty
	// documents and analysis failures to a HOLD with zero confidence.
	Analyze(ctx context.Context, req dto.AnalysisRequest) *dto.AnalysisResponse
}

type analysisService struct {
	logger        *logger.Logger
	stockDataRepo repository.StockDataRepository
	evaluate      func(insights dto.Document) analyzer.Report
	now           func() time.Time
}

func NewAnalysisService(log *logger.Logger, stockDataRepo repository.StockDataRepository) AnalysisService {
	return &analysisService{
		logger:        log,
		stockDataRepo: stockDataRepo,
		evaluate:      analyzer.Evaluate,
		now:           utils.TimeNow,
	}
}

func (s *analysisService) GetChart(ctx context.Context, param dto.GetStockChartParam) (dto.Document, error) {
	if param.Range == "" {
		param.Range = dto.DefaultChartRange
	}
	if param.Interval == "" {
		param.Interval = dto.DefaultChartInterval
	}

	doc, err := s.stockDataRepo.FetchChart(ctx, param.Symbol, param.Range, param.Interval)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error fetching stock chart data", logger.StringField("symbol", param.Symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("error fetching stock chart data: %w", err)
	}
	return doc, nil
}

func (s *analysisService) GetInsights(ctx context.Context, symbol string) (dto.Document, error) {
	doc, err := s.stockDataRepo.FetchInsights(ctx, symbol)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error fetching stock insights data", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("error fetching stock insights data: %w", err)
	}
	return doc, nil
}

func (s *analysisService) GetProfile(ctx context.Context, symbol string) (dto.Document, error) {
	doc, err := s.stockDataRepo.FetchProfile(ctx, symbol)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error fetching stock profile data", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("error fetching stock profile data: %w", err)
	}
	return doc, nil
}

type providerDocuments struct {
	chart       dto.Document
	insights    dto.Document
	profile     dto.Document
	unavailable []string
}

func (s *analysisService) Analyze(ctx context.Context, req dto.AnalysisRequest) *dto.AnalysisResponse {
	timeframe := analyzer.MapTimeframe(req.Months)
	s.logger.InfoContext(ctx, "Analyzing stock",
		logger.StringField("symbol", req.Symbol),
		logger.IntField("months", req.Months),
		logger.StringField("range", timeframe.Range),
		logger.StringField("interval", timeframe.Interval))

	docs := s.fetchAll(ctx, req.Symbol, timeframe)

	resp := &dto.AnalysisResponse{
		Symbol:             req.Symbol,
		Months:             req.Months,
		Degraded:           len(docs.unavailable) > 0,
		UnavailableSources: docs.unavailable,
		Timestamp:          s.now(),
	}

	if err := s.fill(resp, docs); err != nil {
		s.logger.ErrorContext(ctx, "Error analyzing stock", logger.StringField("symbol", req.Symbol), logger.ErrorField(err))
		rec := analyzer.ErrorRecommendation(err)
		resp.Recommendation = rec.Label
		resp.Confidence = rec.Confidence
		resp.Reasons = rec.Reasons
		resp.SpecialSituation = nil
		resp.ScoreResult = nil
		resp.Price = nil
		resp.Company = nil
		return resp
	}

	if resp.Degraded {
		resp.Reasons = append(resp.Reasons, fmt.Sprintf("Partial data: %s unavailable from provider, neutral defaults used", strings.Join(docs.unavailable, ", ")))
	}

	s.logger.InfoContext(ctx, "Analysis completed",
		logger.StringField("symbol", req.Symbol),
		logger.StringField("recommendation", string(resp.Recommendation)),
		logger.FloatField("confidence", resp.Confidence),
		zap.Bool("degraded", resp.Degraded))

	return resp
}

// fetchAll issues the three provider calls concurrently. A failed call
// yields the empty document and never cancels its siblings.
func (s *analysisService) fetchAll(ctx context.Context, symbol string, timeframe dto.Timeframe) providerDocuments {
	var (
		g                                 errgroup.Group
		chart, insights, profile          dto.Document
		chartErr, insightsErr, profileErr error
	)

	g.Go(func() error {
		chart, chartErr = s.stockDataRepo.FetchChart(ctx, symbol, timeframe.Range, timeframe.Interval)
		return nil
	})
	g.Go(func() error {
		insights, insightsErr = s.stockDataRepo.FetchInsights(ctx, symbol)
		return nil
	})
	g.Go(func() error {
		profile, profileErr = s.stockDataRepo.FetchProfile(ctx, symbol)
		return nil
	})
	_ = g.Wait()

	docs := providerDocuments{}
	docs.chart = s.orEmpty(ctx, symbol, dto.SourceChart, chart, chartErr, &docs.unavailable)
	docs.insights = s.orEmpty(ctx, symbol, dto.SourceInsights, insights, insightsErr, &docs.unavailable)
	docs.profile = s.orEmpty(ctx, symbol, dto.SourceProfile, profile, profileErr, &docs.unavailable)
	return docs
}

func (s *analysisService) orEmpty(ctx context.Context, symbol, source string, doc dto.Document, err error, unavailable *[]string) dto.Document {
	if err == nil && doc != nil {
		return doc
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Provider fetch failed, continuing with empty document",
			logger.StringField("symbol", symbol),
			logger.StringField("source", source),
			logger.ErrorField(err))
	}
	*unavailable = append(*unavailable, source)
	return dto.EmptyDocument
}

// fill runs the analysis and turns a panic anywhere in it into an error.
func (s *analysisService) fill(resp *dto.AnalysisResponse, docs providerDocuments) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	report := s.evaluate(docs.insights)

	resp.Recommendation = report.Recommendation.Label
	resp.Confidence = report.Recommendation.Confidence
	resp.Reasons = report.Recommendation.Reasons
	resp.SpecialSituation = &report.Situation
	resp.ScoreResult = &report.Score
	resp.Price = analyzer.SummarizePrice(docs.chart)
	resp.Company = analyzer.SummarizeCompany(docs.profile)
	return nil
}
