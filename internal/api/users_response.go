package api

// swagger:model api.UsersResponse
type UsersResponse struct {
	Message string         `json:"message" example:"Users fetched successfully"`
	Users   []UserResponse `json:"users"`
	Count   int            `json:"count" example:"0"`
}
