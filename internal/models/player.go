package models

import "time"

// Player 表示一名 NFL 球員
// 資料由外部資料管線維護，本服務只讀取，不做任何寫入
type Player struct {
	PlayerID        uint      `gorm:"column:player_id;primaryKey" json:"player_id"`
	GsisID          string    `gorm:"column:gsis_id" json:"gsis_id"` // NFL 官方的球員編號，僅供展示
	FirstName       string    `gorm:"column:first_name" json:"first_name"`
	LastName        string    `gorm:"column:last_name" json:"last_name"`
	Position        string    `gorm:"column:position" json:"position"`
	LastChangedDate time.Time `gorm:"column:last_changed_date" json:"last_changed_date"`
}

// TableName 對應外部資料庫中既有的資料表名稱
func (Player) TableName() string {
	return "player"
}
