package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config 為啟動時一次性載入的不可變設定，由建構子注入各元件，
// 業務邏輯內不得再讀取環境變數。
type Config struct {
	Port        string `env:"PORT, default=8080"`
	Env         string `env:"ENV, default=development"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`
	DatabaseURL string `env:"DATABASE_URL, required"`
	JWTSecret   string `env:"JWT_SECRET"`
}

// Load 從環境變數載入設定。
// JWT_SECRET 缺失視為設定錯誤，絕不退回內建預設值。
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET 未設定")
	}
	return &cfg, nil
}

// IsProduction 回報是否為正式環境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr 回傳 HTTP 監聽位址
func (c *Config) Addr() string {
	return ":" + c.Port
}
