package service

import (
	"context"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/repository"
)

type CountsService struct {
	leagueRepo repository.LeagueRepository
	teamRepo   repository.TeamRepository
	playerRepo repository.PlayerRepository
}

func NewCountsService(leagueRepo repository.LeagueRepository, teamRepo repository.TeamRepository, playerRepo repository.PlayerRepository) *CountsService {
	return &CountsService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// GetCounts 分別統計聯盟、隊伍、球員三個集合的總筆數
// 三次查詢各自獨立，不在同一個交易中，
// 若外部管線剛好在查詢之間寫入資料，數字之間可能略有出入
func (s *CountsService) GetCounts(ctx context.Context) (*models.Counts, error) {
	leagueCount, err := s.leagueRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	teamCount, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	playerCount, err := s.playerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Counts{
		LeagueCount: leagueCount,
		TeamCount:   teamCount,
		PlayerCount: playerCount,
	}, nil
}
