package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swc_fantasy_api/internal/repository"
	"swc_fantasy_api/internal/service"
)

// PerformanceHandler 處理與球員積分相關的請求
type PerformanceHandler struct {
	performanceService *service.PerformanceService
}

func NewPerformanceHandler(performanceService *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

type listPerformancesParams struct {
	Skip                   int    `form:"skip,default=0" binding:"min=0"`
	Limit                  int    `form:"limit,default=100" binding:"min=0"`
	MinimumLastChangedDate string `form:"minimum_last_changed_date"`
}

// ListPerformances 處理積分列表查詢
func (h *PerformanceHandler) ListPerformances(c *gin.Context) {
	var params listPerformancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		validationError(c, err)
		return
	}

	minDate, err := parseDateParam(params.MinimumLastChangedDate)
	if err != nil {
		dateError(c, "minimum_last_changed_date")
		return
	}

	filter := repository.PerformanceFilter{MinimumLastChanged: minDate}

	performances, err := h.performanceService.ListPerformances(c.Request.Context(), filter, params.Skip, params.Limit)
	if err != nil {
		queryError(c)
		return
	}

	c.JSON(http.StatusOK, performances)
}
