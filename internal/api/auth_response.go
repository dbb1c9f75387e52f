package api

// swagger:model api.AuthUser
type AuthUser struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"user"`
}

// swagger:model api.AuthResponse
type AuthResponse struct {
	Message string   `json:"message" example:"User signed up successfully"`
	User    AuthUser `json:"user"`
	Token   string   `json:"token"`
}
