package api

import "acquisitions/internal/validation"

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error   string                  `json:"error" example:"Validation failed"`
	Details []validation.FieldError `json:"details,omitempty"`
}
