package handler

import (
	"net/http"

	"github.com/toolgen/toolgen/internal/models"
	"github.com/toolgen/toolgen/internal/service"
)

const defaultVersion = "dev"

// HealthHandler handles GET /health
type HealthHandler struct {
	renderer *service.Renderer
	version  string
}

func NewHealthHandler(renderer *service.Renderer, version string) *HealthHandler {
	if version == "" {
		version = defaultVersion
	}
	return &HealthHandler{renderer: renderer, version: version}
}

// Health renders the default tool as a smoke check of the renderer
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	overallStatus := "healthy"

	if h.renderer.Render(service.ToolSpec{}) != "" {
		checks["renderer"] = "ok"
	} else {
		checks["renderer"] = "empty output"
		overallStatus = "degraded"
	}

	statusCode := http.StatusOK
	if overallStatus == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	models.WriteJSON(w, statusCode, models.HealthResponse{
		Status:  overallStatus,
		Version: h.version,
		Checks:  checks,
	})
}
