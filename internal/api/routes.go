package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swc_fantasy_api/internal/api/handlers"
	"swc_fantasy_api/internal/middleware"
	"swc_fantasy_api/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	playerHandler := handlers.NewPlayerHandler(services.PlayerService)
	performanceHandler := handlers.NewPerformanceHandler(services.PerformanceService)
	leagueHandler := handlers.NewLeagueHandler(services.LeagueService)
	teamHandler := handlers.NewTeamHandler(services.TeamService)
	countsHandler := handlers.NewCountsHandler(services.CountsService)

	// 每個請求都帶上請求編號並記錄指標
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})

	// 健康檢查，不觸碰資料庫，只確認服務行程存活
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API health check successful"})
	})

	// Prometheus 指標
	r.GET("/metrics", middleware.MetricsHandler())

	// 對外的查詢路由，全部是唯讀的 GET
	v0 := r.Group("/v0")
	{
		v0.GET("/players/", playerHandler.ListPlayers)
		v0.GET("/players/:player_id", playerHandler.GetPlayer)
		v0.GET("/performances/", performanceHandler.ListPerformances)
		v0.GET("/leagues/", leagueHandler.ListLeagues)
		v0.GET("/leagues/:league_id", leagueHandler.GetLeague)
		v0.GET("/teams/", teamHandler.ListTeams)
		v0.GET("/counts/", countsHandler.GetCounts)
	}
}
