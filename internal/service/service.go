package service

import (
	"stock-genius/config"
	"stock-genius/internal/repository"
	"stock-genius/pkg/logger"
)

type Service struct {
	AnalysisService AnalysisService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
) *Service {
	return &Service{
		AnalysisService: NewAnalysisService(log, repo.StockDataRepo),
	}
}
