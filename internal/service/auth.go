package service

import (
	"context"
	"errors"
	"fmt"

	"acquisitions/internal/database"
	"acquisitions/internal/model"
	"acquisitions/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 表示帳號不存在或密碼不符
var ErrInvalidCredentials = errors.New("invalid credentials")

var (
	hashPassword     = HashPassword
	comparePassword  = ComparePassword
	issueAccessToken = IssueAccessToken
	getUserByEmail   = store.GetUserByEmail
	createUser       = store.CreateUser
)

// SignupInput 為通過驗證且已正規化的註冊資料
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult 包含持久化後的使用者與其存取令牌
type AuthResult struct {
	User  *model.User
	Token string
}

// SignupUser 依序執行：唯一性預檢 → 密碼哈希 → 寫入 → 發行令牌。
// Email 重複時回傳 store.ErrDuplicateEmail。
func SignupUser(ctx context.Context, db database.DB, secret string, in SignupInput) (*AuthResult, error) {
	if in.Role == "" {
		in.Role = model.RoleUser
	}

	// 預檢僅為快速路徑，併發下的唯一性由資料庫 unique constraint 保證
	if _, err := getUserByEmail(ctx, db, in.Email); err == nil {
		return nil, store.ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("SignupUser: %w", err)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("SignupUser: %w", err)
	}

	user, err := createUser(ctx, db, &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("SignupUser: %w", err)
	}

	token, err := issueAccessToken(*user, secret, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("SignupUser: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// AuthenticateUser 依 Email 與明文密碼驗證使用者並發行令牌。
// 帳號不存在與密碼不符皆回傳 ErrInvalidCredentials，不區分兩者。
func AuthenticateUser(ctx context.Context, db database.DB, secret, email, password string) (*AuthResult, error) {
	user, err := getUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("AuthenticateUser: %w", err)
	}

	if err := comparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		// 哈希格式異常等基礎設施錯誤
		return nil, fmt.Errorf("AuthenticateUser: %w", err)
	}

	token, err := issueAccessToken(*user, secret, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("AuthenticateUser: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
