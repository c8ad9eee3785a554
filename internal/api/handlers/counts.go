package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swc_fantasy_api/internal/service"
)

// CountsHandler 處理資料總數統計的請求
type CountsHandler struct {
	countsService *service.CountsService
}

func NewCountsHandler(countsService *service.CountsService) *CountsHandler {
	return &CountsHandler{countsService: countsService}
}

// GetCounts 回傳聯盟、隊伍、球員的總筆數
func (h *CountsHandler) GetCounts(c *gin.Context) {
	counts, err := h.countsService.GetCounts(c.Request.Context())
	if err != nil {
		queryError(c)
		return
	}

	c.JSON(http.StatusOK, counts)
}
