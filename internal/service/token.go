package service

import (
	"errors"
	"fmt"
	"time"

	"acquisitions/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL 為存取令牌的有效期限
const AccessTokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired 表示令牌已過期
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid 表示簽章不符或格式錯誤
	ErrTokenInvalid = errors.New("token is invalid")
)

var timeNow = time.Now

// Claims 定義 JWT 負載內容
type Claims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueAccessToken 依據使用者資訊與 TTL 產生 JWT
func IssueAccessToken(user model.User, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("IssueAccessToken: signing secret is empty")
	}

	now := timeNow()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("IssueAccessToken: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken 驗證並解析 JWT 令牌。
// 過期回傳 ErrTokenExpired，其餘驗證失敗一律回傳 ErrTokenInvalid。
func VerifyAccessToken(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("VerifyAccessToken: signing secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
