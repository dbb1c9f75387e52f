package auth

import (
	"errors"
	"net/http"
	"time"

	"acquisitions/internal/api"
	"acquisitions/internal/config"
	"acquisitions/internal/database"
	"acquisitions/internal/metrics"
	"acquisitions/internal/middleware"
	"acquisitions/internal/service"
	"acquisitions/internal/store"
	"acquisitions/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	signupUser       = service.SignupUser
	authenticateUser = service.AuthenticateUser
)

// setTokenCookie 將令牌寫入 HTTP-only cookie，效期與令牌一致
func setTokenCookie(c echo.Context, cfg *config.Config, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.AccessTokenTTL / time.Second),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

// @Summary     Sign up a new user
// @Description 驗證註冊資料並建立新帳號 (Email 會自動轉小寫)，回傳使用者與存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.SignupRequest true "註冊資料"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignupHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request payload"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			metrics.SignupsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error:   "Validation failed",
				Details: validation.Details(err),
			})
		}

		result, err := signupUser(c.Request().Context(), db, cfg.JWTSecret, service.SignupInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already exists"})
			}
			metrics.SignupsTotal.WithLabelValues("error").Inc()
			log.Error().Err(err).Str("email", req.Email).Msg("signup failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}

		setTokenCookie(c, cfg, result.Token)
		metrics.SignupsTotal.WithLabelValues("created").Inc()
		log.Info().Str("email", result.User.Email).Str("role", result.User.Role).Msg("user signed up")

		return c.JSON(http.StatusCreated, api.AuthResponse{
			Message: "User signed up successfully",
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
