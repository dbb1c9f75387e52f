package api

import "strings"

// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255" example:"Alice"`
	Email    string `json:"email" validate:"required,email,max=255" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=6,max=128" example:"Secret123!"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin" example:"user"`
}

// Normalize 修剪空白並將 Email 轉為小寫，需在驗證前呼叫
func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}
