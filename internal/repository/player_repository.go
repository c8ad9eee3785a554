package repository

import (
	"context"
	"time"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/storage"
)

// PlayerFilter 描述球員列表查詢的過濾條件
// 欄位為 nil 表示不限制，有值的條件之間以 AND 組合
// 字串條件採用區分大小寫的完全比對
type PlayerFilter struct {
	FirstName          *string
	LastName           *string
	MinimumLastChanged *time.Time // 含邊界，保留 last_changed_date >= 此日期的資料
}

type PlayerRepository interface {
	List(ctx context.Context, filter PlayerFilter, skip, limit int) ([]models.Player, error)
	FindByID(ctx context.Context, id uint) (*models.Player, error)
	Count(ctx context.Context) (int64, error)
}

type playerRepository struct {
	baseRepository
}

func NewPlayerRepository(db *storage.DB) PlayerRepository {
	return &playerRepository{baseRepository{db: db}}
}

func (r *playerRepository) List(ctx context.Context, filter PlayerFilter, skip, limit int) ([]models.Player, error) {
	players := make([]models.Player, 0)

	query := r.db.WithContext(ctx).Model(&models.Player{})
	if filter.FirstName != nil {
		query = query.Where("first_name = ?", *filter.FirstName)
	}
	if filter.LastName != nil {
		query = query.Where("last_name = ?", *filter.LastName)
	}
	if filter.MinimumLastChanged != nil {
		query = query.Where("last_changed_date >= ?", *filter.MinimumLastChanged)
	}

	// 先依主鍵排序再分頁，skip/limit 的結果才會穩定
	err := query.Order("player_id asc").Offset(skip).Limit(limit).Find(&players).Error
	return players, err
}

func (r *playerRepository) FindByID(ctx context.Context, id uint) (*models.Player, error) {
	var player models.Player
	if err := r.findByID(ctx, id, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Player{})
}
