package repository

import "swc_fantasy_api/internal/storage"

type Repositories struct {
	Player      PlayerRepository
	Performance PerformanceRepository
	League      LeagueRepository
	Team        TeamRepository
}

func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		Player:      NewPlayerRepository(db),
		Performance: NewPerformanceRepository(db),
		League:      NewLeagueRepository(db),
		Team:        NewTeamRepository(db),
	}
}
