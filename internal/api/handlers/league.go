package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swc_fantasy_api/internal/repository"
	"swc_fantasy_api/internal/service"
)

// LeagueHandler 處理與聯盟相關的請求
type LeagueHandler struct {
	leagueService *service.LeagueService
}

func NewLeagueHandler(leagueService *service.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagueService: leagueService}
}

type listLeaguesParams struct {
	Skip                   int    `form:"skip,default=0" binding:"min=0"`
	Limit                  int    `form:"limit,default=100" binding:"min=0"`
	MinimumLastChangedDate string `form:"minimum_last_changed_date"`
	LeagueName             string `form:"league_name"`
}

// ListLeagues 處理聯盟列表查詢
func (h *LeagueHandler) ListLeagues(c *gin.Context) {
	var params listLeaguesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		validationError(c, err)
		return
	}

	minDate, err := parseDateParam(params.MinimumLastChangedDate)
	if err != nil {
		dateError(c, "minimum_last_changed_date")
		return
	}

	filter := repository.LeagueFilter{
		LeagueName:         optionalString(params.LeagueName),
		MinimumLastChanged: minDate,
	}

	leagues, err := h.leagueService.ListLeagues(c.Request.Context(), filter, params.Skip, params.Limit)
	if err != nil {
		queryError(c)
		return
	}

	c.JSON(http.StatusOK, leagues)
}

// GetLeague 處理以聯盟編號查詢單一聯盟
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	leagueID, ok := parseIDParam(c, "league_id")
	if !ok {
		return
	}

	league, err := h.leagueService.GetLeague(c.Request.Context(), leagueID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "League not found"})
			return
		}
		queryError(c)
		return
	}

	c.JSON(http.StatusOK, league)
}
