package auth

import (
	"errors"
	"net/http"

	"acquisitions/internal/api"
	"acquisitions/internal/config"
	"acquisitions/internal/database"
	"acquisitions/internal/metrics"
	"acquisitions/internal/service"
	"acquisitions/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// @Summary     Sign in
// @Description 使用 Email 與密碼驗證，回傳使用者與存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.SigninRequest true "登入資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signin [post]
func SigninHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SigninRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request payload"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			metrics.SigninsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error:   "Validation failed",
				Details: validation.Details(err),
			})
		}

		result, err := authenticateUser(c.Request().Context(), db, cfg.JWTSecret, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				metrics.SigninsTotal.WithLabelValues("invalid_credentials").Inc()
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials"})
			}
			metrics.SigninsTotal.WithLabelValues("error").Inc()
			log.Error().Err(err).Str("email", req.Email).Msg("signin failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}

		setTokenCookie(c, cfg, result.Token)
		metrics.SigninsTotal.WithLabelValues("ok").Inc()
		log.Info().Str("email", result.User.Email).Msg("user signed in")

		return c.JSON(http.StatusOK, api.AuthResponse{
			Message: "Signed in successfully",
			User: api.AuthUser{
				ID:    result.User.ID,
				Name:  result.User.Name,
				Email: result.User.Email,
				Role:  result.User.Role,
			},
			Token: result.Token,
		})
	}
}
