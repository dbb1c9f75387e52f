package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"acquisitions/internal/api"
	"acquisitions/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealthHandler(t *testing.T) {
	start := time.Now().Add(-3 * time.Second)
	c, rec := newContext()

	require.NoError(t, HealthHandler(start)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "OK", resp.Status)
	require.GreaterOrEqual(t, resp.Uptime, 3.0)

	ts, err := time.Parse(time.RFC3339, resp.Timestamp)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestPingHandler(t *testing.T) {
	t.Run("資料庫正常", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return nil }}
		c, rec := newContext()

		require.NoError(t, PingHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp PingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "pong", resp.Message)
	})

	t.Run("資料庫連線失敗", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return errors.New("ping failed") }}
		c, rec := newContext()

		require.NoError(t, PingHandler(db)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "database unhealthy", resp.Error)
	})
}
