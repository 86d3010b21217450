package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/toolgen/toolgen/internal/middleware"
	"github.com/toolgen/toolgen/internal/models"
	"github.com/toolgen/toolgen/internal/security"
	"github.com/toolgen/toolgen/internal/service"
)

// GenerateHandler handles POST /generate_tool
type GenerateHandler struct {
	renderer    *service.Renderer
	auditLogger *security.AuditLogger
}

func NewGenerateHandler(renderer *service.Renderer, auditLogger *security.AuditLogger) *GenerateHandler {
	return &GenerateHandler{renderer: renderer, auditLogger: auditLogger}
}

// GenerateTool responds 200 for every decodable body, including languages
// the renderer does not support.
func (h *GenerateHandler) GenerateTool(w http.ResponseWriter, r *http.Request) {
	req, err := models.DecodeGenerateToolRequest(r)
	if err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	spec := toToolSpec(req)
	spec.SetDefaults()
	code := h.renderer.Render(spec)
	requestID := middleware.RequestIDFromContext(r.Context())
	supported := service.IsSupported(service.ParseLanguage(spec.Language))

	log.Debug().
		Str("request_id", requestID).
		Str("tool_name_hash", security.HashString(spec.Name)).
		Str("language", security.LanguageLabel(spec.Language, supported)).
		Str("code_style", string(spec.CodeStyle)).
		Int("code_bytes", len(code)).
		Msg("tool generated")

	h.auditLogger.LogGeneration(security.GenerationEvent{
		RequestID:       requestID,
		ToolName:        spec.Name,
		Description:     spec.Description,
		Language:        spec.Language,
		CodeStyle:       string(spec.CodeStyle),
		IncludeComments: spec.IncludeComments,
		Supported:       supported,
		CodeBytes:       len(code),
	})

	models.WriteJSON(w, http.StatusOK, models.GenerateToolResponse{Code: code})
}

func toToolSpec(req models.GenerateToolRequest) service.ToolSpec {
	return service.ToolSpec{
		Name:               req.ToolName,
		Description:        req.Description,
		Language:           req.Language,
		Frameworks:         req.Frameworks,
		InputType:          req.InputType,
		OutputType:         req.OutputType,
		AdditionalFeatures: req.AdditionalFeatures,
		IncludeComments:    req.IncludeComments,
		CodeStyle:          service.CodeStyle(req.CodeStyle),
		Explicit:           req.Set,
	}
}
