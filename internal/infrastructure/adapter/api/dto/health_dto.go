package dto

// HealthResponse represents the liveness probe result
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
