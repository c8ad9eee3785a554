package repository

import (
	"path/filepath"
	"testing"
	"time"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/storage"
	"swc_fantasy_api/pkg/config"
)

// newTestDB 建立一個測試專用的 sqlite 資料庫
// 測試中的寫入只是為了準備資料，正式程式碼沒有任何寫入路徑
func newTestDB(t *testing.T) *storage.DB {
	t.Helper()

	db, err := storage.NewDB(config.DBConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(&models.Player{}, &models.Performance{}, &models.League{}, &models.Team{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func timePtr(t time.Time) *time.Time { return &t }
