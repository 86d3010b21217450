package models

// GenerateToolResponse is returned by POST /generate_tool
type GenerateToolResponse struct {
	Code string `json:"code"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}
