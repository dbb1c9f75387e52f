// File: cmd/service/main.go
// @title        Acquisitions API
// @version      1.0
// @description  使用者註冊、驗證與查詢服務的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"

	"acquisitions/internal/config"
	"acquisitions/internal/database"
	"acquisitions/internal/logger"
	"acquisitions/internal/middleware"
	"acquisitions/internal/router"
	"acquisitions/internal/validation"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	_ "acquisitions/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit

	// prometheus collector 僅能註冊一次，故在套件層級建立
	promMiddleware = echoprometheus.NewMiddleware("acquisitions")
)

func run() error {
	ctx := context.Background()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	log.Logger = logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration 執行失敗: %w", err)
	}

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(promMiddleware)

	router.Setup(e, db, cfg)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
