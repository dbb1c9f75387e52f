package api

import "strings"

// swagger:model api.SigninRequest
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// Normalize 修剪空白並將 Email 轉為小寫，需在驗證前呼叫
func (r *SigninRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}
