package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Driver   string // "postgres" 或 "sqlite"
	Host     string
	User     string
	Password string
	Name     string
	Port     int
	Path     string // sqlite 資料庫檔案路徑
}

func Load() (*Config, error) {
	// 每次載入都用獨立的 viper 實例，避免殘留上一次的狀態
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./pkg/config")

	// 預設值，沒有設定檔也能以 sqlite 啟動
	// 環境變數只會覆蓋 viper 已知的鍵，所以每個設定鍵都要在這裡註冊
	v.SetDefault("server.address", ":8000")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "")
	v.SetDefault("db.port", 0)
	v.SetDefault("db.path", "fantasy_data.db")

	// 環境變數覆寫，例如 SWC_DB_PASSWORD 會覆蓋 db.password
	v.SetEnvPrefix("SWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
