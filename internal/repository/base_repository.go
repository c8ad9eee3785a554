package repository

import (
	"context"

	"swc_fantasy_api/internal/storage"
)

// baseRepository 提供各實體倉儲共用的唯讀查詢
// 本服務不對資料庫做任何寫入，所以這裡沒有 Create/Update/Delete
type baseRepository struct {
	db *storage.DB
}

// findByID 依主鍵查詢單筆資料，查無資料時回傳 gorm.ErrRecordNotFound
func (r *baseRepository) findByID(ctx context.Context, id uint, model interface{}) error {
	return r.db.WithContext(ctx).First(model, id).Error
}

// count 回傳整個集合的總筆數，不套用任何過濾條件
func (r *baseRepository) count(ctx context.Context, model interface{}) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(model).Count(&total).Error
	return total, err
}
