package models

import "time"

// Performance 表示一名球員在某個計分週期內取得的夢幻積分
type Performance struct {
	PerformanceID   uint      `gorm:"column:performance_id;primaryKey" json:"performance_id"`
	PlayerID        uint      `gorm:"column:player_id" json:"player_id"`
	WeekNumber      string    `gorm:"column:week_number" json:"week_number"`
	FantasyPoints   float64   `gorm:"column:fantasy_points" json:"fantasy_points"`
	LastChangedDate time.Time `gorm:"column:last_changed_date" json:"last_changed_date"`
}

func (Performance) TableName() string {
	return "performance"
}
