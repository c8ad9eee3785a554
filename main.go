package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"swc_fantasy_api/internal/api"
	"swc_fantasy_api/internal/models"
	"swc_fantasy_api/internal/repository"
	"swc_fantasy_api/internal/service"
	"swc_fantasy_api/internal/storage"
	"swc_fantasy_api/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從配置文件中讀取設置，如數據庫連接信息和服務器地址等
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	// 依配置選擇 postgres 或 sqlite 驅動
	db, err := storage.NewDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	// 資料內容由外部資料管線維護，這裡只確保首次啟動時表格存在
	if err := db.AutoMigrate(&models.Player{}, &models.Performance{}, &models.League{}, &models.Team{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories
	repos := repository.NewRepositories(db)

	// 初始化 services
	services := service.NewServices(repos)

	// 設置 Gin 路由
	// 創建一個默認的 Gin 路由器並設置路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	// 使用配置中指定的地址啟動 HTTP 服務器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
