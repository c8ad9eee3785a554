package models

import "time"

// League 表示一個 SWC 夢幻足球聯盟
type League struct {
	LeagueID        uint      `gorm:"column:league_id;primaryKey" json:"league_id"`
	LeagueName      string    `gorm:"column:league_name" json:"league_name"`
	ScoringType     string    `gorm:"column:scoring_type" json:"scoring_type"`
	LastChangedDate time.Time `gorm:"column:last_changed_date" json:"last_changed_date"`
}

func (League) TableName() string {
	return "league"
}
