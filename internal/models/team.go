package models

import "time"

// Team 表示聯盟中的一支隊伍
type Team struct {
	TeamID          uint      `gorm:"column:team_id;primaryKey" json:"team_id"`
	TeamName        string    `gorm:"column:team_name" json:"team_name"`
	LeagueID        uint      `gorm:"column:league_id" json:"league_id"`
	LastChangedDate time.Time `gorm:"column:last_changed_date" json:"last_changed_date"`
}

func (Team) TableName() string {
	return "team"
}
