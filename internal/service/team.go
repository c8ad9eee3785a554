package service

import (
	"context"

	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/repository"
)

type TeamService struct {
	teamRepo repository.TeamRepository
}

func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context, filter repository.TeamFilter, skip, limit int) ([]models.Team, error) {
	return s.teamRepo.List(ctx, filter, skip, limit)
}
