package dto

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
