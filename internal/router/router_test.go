package router

import (
	"net/http"
	"testing"

	"acquisitions/internal/config"
	"acquisitions/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	e := echo.New()
	db := &database.FakeDB{}
	cfg := &config.Config{Env: "development", JWTSecret: "test-secret"}

	Setup(e, db, cfg)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		http.MethodGet + " /health",
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/signup",
		http.MethodPost + " /api/auth/signin",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/:user_id",
	}
	for _, route := range want {
		require.True(t, registered[route], "missing route %s", route)
	}
}
