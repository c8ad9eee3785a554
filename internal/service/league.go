package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/repository"
)

type LeagueService struct {
	leagueRepo repository.LeagueRepository
}

func NewLeagueService(leagueRepo repository.LeagueRepository) *LeagueService {
	return &LeagueService{leagueRepo: leagueRepo}
}

func (s *LeagueService) ListLeagues(ctx context.Context, filter repository.LeagueFilter, skip, limit int) ([]models.League, error) {
	return s.leagueRepo.List(ctx, filter, skip, limit)
}

func (s *LeagueService) GetLeague(ctx context.Context, id uint) (*models.League, error) {
	league, err := s.leagueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return league, nil
}
