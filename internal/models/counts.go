package models

// Counts 表示各資料集合的總筆數
// 這是每次請求即時計算出來的統計值，不會存入資料庫
type Counts struct {
	LeagueCount int64 `json:"league_count"`
	TeamCount   int64 `json:"team_count"`
	PlayerCount int64 `json:"player_count"`
}
