// FILE: internal/dto/error_dto.go
package dto

import "fmt"

// LimitExceededError is a custom error that carries quota details for 429
// responses.
type LimitExceededError struct {
	Quota string  `json:"quota"`
	Limit float64 `json:"limit"`
	Used  float64 `json:"used"`
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s quota exceeded (%.0f of %.0f used)", e.Quota, e.Used, e.Limit)
}

// NotFoundError maps to 404.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Id)
}

// ValidationError maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FeatureGateError maps to 403: the plan does not include the feature.
type FeatureGateError struct {
	Feature string
	Plan    string
}

func (e *FeatureGateError) Error() string {
	return fmt.Sprintf("plan %s does not include %s", e.Plan, e.Feature)
}

// UnauthorizedError maps to 401.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// LimitExceededData is the data payload for 429 responses.
type LimitExceededData struct {
	Quota            string  `json:"quota"`
	Limit            float64 `json:"limit"`
	Used             float64 `json:"used"`
	ShowModalPricing bool    `json:"show_modal_pricing"`
}
