package repository

import (
	"context"
	"time"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/storage"
)

// LeagueFilter 描述聯盟列表查詢的過濾條件
type LeagueFilter struct {
	LeagueName         *string
	MinimumLastChanged *time.Time
}

type LeagueRepository interface {
	List(ctx context.Context, filter LeagueFilter, skip, limit int) ([]models.League, error)
	FindByID(ctx context.Context, id uint) (*models.League, error)
	Count(ctx context.Context) (int64, error)
}

type leagueRepository struct {
	baseRepository
}

func NewLeagueRepository(db *storage.DB) LeagueRepository {
	return &leagueRepository{baseRepository{db: db}}
}

func (r *leagueRepository) List(ctx context.Context, filter LeagueFilter, skip, limit int) ([]models.League, error) {
	leagues := make([]models.League, 0)

	query := r.db.WithContext(ctx).Model(&models.League{})
	if filter.LeagueName != nil {
		query = query.Where("league_name = ?", *filter.LeagueName)
	}
	if filter.MinimumLastChanged != nil {
		query = query.Where("last_changed_date >= ?", *filter.MinimumLastChanged)
	}

	err := query.Order("league_id asc").Offset(skip).Limit(limit).Find(&leagues).Error
	return leagues, err
}

func (r *leagueRepository) FindByID(ctx context.Context, id uint) (*models.League, error) {
	var league models.League
	if err := r.findByID(ctx, id, &league); err != nil {
		return nil, err
	}
	return &league, nil
}

func (r *leagueRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.League{})
}
