package repository

import (
	"context"
	"time"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/storage"
)

// TeamFilter 描述隊伍列表查詢的過濾條件
type TeamFilter struct {
	TeamName           *string
	LeagueID           *uint
	MinimumLastChanged *time.Time
}

type TeamRepository interface {
	List(ctx context.Context, filter TeamFilter, skip, limit int) ([]models.Team, error)
	Count(ctx context.Context) (int64, error)
}

type teamRepository struct {
	baseRepository
}

func NewTeamRepository(db *storage.DB) TeamRepository {
	return &teamRepository{baseRepository{db: db}}
}

func (r *teamRepository) List(ctx context.Context, filter TeamFilter, skip, limit int) ([]models.Team, error) {
	teams := make([]models.Team, 0)

	query := r.db.WithContext(ctx).Model(&models.Team{})
	if filter.TeamName != nil {
		query = query.Where("team_name = ?", *filter.TeamName)
	}
	if filter.LeagueID != nil {
		query = query.Where("league_id = ?", *filter.LeagueID)
	}
	if filter.MinimumLastChanged != nil {
		query = query.Where("last_changed_date >= ?", *filter.MinimumLastChanged)
	}

	err := query.Order("team_id asc").Offset(skip).Limit(limit).Find(&teams).Error
	return teams, err
}

func (r *teamRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Team{})
}
