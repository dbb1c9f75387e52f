// File: internal/router/router.go
package router

import (
	"time"

	"acquisitions/internal/config"
	"acquisitions/internal/database"
	"acquisitions/internal/handler"
	"acquisitions/internal/handler/auth"
	"acquisitions/internal/handler/users"
	"acquisitions/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cfg *config.Config) {
	start := time.Now()

	// 健康檢查（無需登入）
	e.GET("/health", handler.HealthHandler(start))

	api := e.Group("/api")

	// 資料庫連線檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth(cfg.JWTSecret))

	// 註冊與登入
	api.POST("/auth/signup", auth.SignupHandler(db, cfg))
	api.POST("/auth/signin", auth.SigninHandler(db, cfg))

	// 使用者列表公開；單筆查詢為管理員專屬
	api.GET("/users", users.ListUsersHandler(db))
	api.GET("/users/:user_id", users.GetUserHandler(db), middleware.RequireAdmin(cfg.JWTSecret))
}
