package api

// swagger:model api.HealthResponse
type HealthResponse struct {
	Status    string  `json:"status" example:"OK"`
	Timestamp string  `json:"timestamp" example:"2025-05-01T15:04:05Z"`
	Uptime    float64 `json:"uptime" example:"12.34"`
}
