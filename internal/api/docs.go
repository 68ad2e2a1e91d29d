package api

// ErrorResponse represents an API error
// @Description Error response from the API
type ErrorResponse struct {
	// Error message
	Error string `json:"error" example:"not found on GitHub"`
}

// HealthResponse is returned by the liveness check
type HealthResponse struct {
	OK bool `json:"ok" example:"true"`
}
