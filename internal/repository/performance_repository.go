package repository

import (
	"context"
	"time"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/storage"
)

// PerformanceFilter 描述積分列表查詢的過濾條件
type PerformanceFilter struct {
	MinimumLastChanged *time.Time
}

type PerformanceRepository interface {
	List(ctx context.Context, filter PerformanceFilter, skip, limit int) ([]models.Performance, error)
}

type performanceRepository struct {
	baseRepository
}

func NewPerformanceRepository(db *storage.DB) PerformanceRepository {
	return &performanceRepository{baseRepository{db: db}}
}

func (r *performanceRepository) List(ctx context.Context, filter PerformanceFilter, skip, limit int) ([]models.Performance, error) {
	performances := make([]models.Performance, 0)

	query := r.db.WithContext(ctx).Model(&models.Performance{})
	if filter.MinimumLastChanged != nil {
		query = query.Where("last_changed_date >= ?", *filter.MinimumLastChanged)
	}

	err := query.Order("performance_id asc").Offset(skip).Limit(limit).Find(&performances).Error
	return performances, err
}
