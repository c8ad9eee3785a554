package service

import (
	"context"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/repository"
)

type PerformanceService struct {
	performanceRepo repository.PerformanceRepository
}

func NewPerformanceService(performanceRepo repository.PerformanceRepository) *PerformanceService {
	return &PerformanceService{performanceRepo: performanceRepo}
}

func (s *PerformanceService) ListPerformances(ctx context.Context, filter repository.PerformanceFilter, skip, limit int) ([]models.Performance, error) {
	return s.performanceRepo.List(ctx, filter, skip, limit)
}
