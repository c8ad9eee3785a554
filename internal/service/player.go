package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/repository"
)

type PlayerService struct {
	playerRepo repository.PlayerRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter repository.PlayerFilter, skip, limit int) ([]models.Player, error) {
	return s.playerRepo.List(ctx, filter, skip, limit)
}

func (s *PlayerService) GetPlayer(ctx context.Context, id uint) (*models.Player, error) {
	player, err := s.playerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return player, nil
}
