package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// ProviderErrorDetail describes a failed provider call
type ProviderErrorDetail struct {
	Kind   string `json:"kind"`
	Status int    `json:"status,omitempty"`
	Body   string `json:"body,omitempty"`
}
