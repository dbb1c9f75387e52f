// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"acquisitions/internal/api"
	"acquisitions/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler 回報服務狀態、目前時間與啟動以來的運行秒數
// @Summary     Health check
// @Description 回傳服務狀態、目前時間與啟動以來的運行秒數
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler(start time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(start).Seconds(),
		})
	}
}

// PingResponse 資料庫連線檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler 檢查資料庫連線是否正常（需通過認證）
// @Summary     Ping
// @Description 回傳 pong，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
