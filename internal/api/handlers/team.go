package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swc_fantasy_api/internal/repository"
	"swc_fantasy_api/internal/service"
)

// TeamHandler 處理與隊伍相關的請求
type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type listTeamsParams struct {
	Skip                   int    `form:"skip,default=0" binding:"min=0"`
	Limit                  int    `form:"limit,default=100" binding:"min=0"`
	MinimumLastChangedDate string `form:"minimum_last_changed_date"`
	TeamName               string `form:"team_name"`
	LeagueID               *uint  `form:"league_id"`
}

// ListTeams 處理隊伍列表查詢
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var params listTeamsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		validationError(c, err)
		return
	}

	minDate, err := parseDateParam(params.MinimumLastChangedDate)
	if err != nil {
		dateError(c, "minimum_last_changed_date")
		return
	}

	filter := repository.TeamFilter{
		TeamName:           optionalString(params.TeamName),
		LeagueID:           params.LeagueID,
		MinimumLastChanged: minDate,
	}

	teams, err := h.teamService.ListTeams(c.Request.Context(), filter, params.Skip, params.Limit)
	if err != nil {
		queryError(c)
		return
	}

	c.JSON(http.StatusOK, teams)
}
