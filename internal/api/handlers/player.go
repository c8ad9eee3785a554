package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swc_fantasy_api/internal/repository"
	"swc_fantasy_api/internal/service"
)

// PlayerHandler 處理與球員相關的請求
type PlayerHandler struct {
	playerService *service.PlayerService
}

// NewPlayerHandler 創建一個新的 PlayerHandler 實例
func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

type listPlayersParams struct {
	Skip                   int    `form:"skip,default=0" binding:"min=0"`
	Limit                  int    `form:"limit,default=100" binding:"min=0"`
	MinimumLastChangedDate string `form:"minimum_last_changed_date"`
	FirstName              string `form:"first_name"`
	LastName               string `form:"last_name"`
}

// ListPlayers 處理球員列表查詢
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	var params listPlayersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		validationError(c, err)
		return
	}

	minDate, err := parseDateParam(params.MinimumLastChangedDate)
	if err != nil {
		dateError(c, "minimum_last_changed_date")
		return
	}

	filter := repository.PlayerFilter{
		FirstName:          optionalString(params.FirstName),
		LastName:           optionalString(params.LastName),
		MinimumLastChanged: minDate,
	}

	players, err := h.playerService.ListPlayers(c.Request.Context(), filter, params.Skip, params.Limit)
	if err != nil {
		queryError(c)
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetPlayer 處理以球員編號查詢單一球員
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	playerID, ok := parseIDParam(c, "player_id")
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayer(c.Request.Context(), playerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Player not found"})
			return
		}
		queryError(c)
		return
	}

	c.JSON(http.StatusOK, player)
}
