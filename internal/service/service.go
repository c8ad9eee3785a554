package service

import (
	"swc_fantasy_api/internal/repository"
)

type Services struct {
	PlayerService      *PlayerService
	PerformanceService *PerformanceService
	LeagueService      *LeagueService
	TeamService        *TeamService
	CountsService      *CountsService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		PlayerService:      NewPlayerService(repos.Player),
		PerformanceService: NewPerformanceService(repos.Performance),
		LeagueService:      NewLeagueService(repos.League),
		TeamService:        NewTeamService(repos.Team),
		CountsService:      NewCountsService(repos.League, repos.Team, repos.Player),
	}
}
