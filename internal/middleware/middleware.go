package middleware

import (
	"errors"
	"net/http"
	"strings"

	"acquisitions/internal/metrics"
	"acquisitions/internal/model"
	"acquisitions/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey   = "user"
	HeaderXRequestID = "X-Request-ID"
	TokenCookieName  = "token"
)

var verifyAccessToken = service.VerifyAccessToken

// extractToken 先讀 Authorization bearer 標頭，其次退回 token cookie
func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
		}
		return parts[1], nil
	}
	cookie, err := c.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return cookie.Value, nil
}

func extractClaims(c echo.Context, secret string) (*service.Claims, error) {
	tokenString, err := extractToken(c)
	if err != nil {
		return nil, err
	}
	claims, err := verifyAccessToken(tokenString, secret)
	if err != nil {
		// 過期與偽造需區分回報
		if errors.Is(err, service.ErrTokenExpired) {
			metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "token expired")
		}
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
	return claims, nil
}

// RequireAuth 驗證存取令牌並將 claims 放入 context
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之上要求 admin 角色
func RequireAdmin(secret string) echo.MiddlewareFunc {
	auth := RequireAuth(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.Claims)
			if claims.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}

// RequestID 沿用進站 X-Request-ID，否則產生 UUID，並寫回回應標頭
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(HeaderXRequestID)
			if rid == "" {
				rid = uuid.New().String()
			}
			c.Set(HeaderXRequestID, rid)
			c.Response().Header().Set(HeaderXRequestID, rid)
			return next(c)
		}
	}
}
