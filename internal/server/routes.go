package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/toolgen/toolgen/internal/handler"
	"github.com/toolgen/toolgen/internal/middleware"
	"github.com/toolgen/toolgen/internal/security"
	"github.com/toolgen/toolgen/internal/service"
)

// setupRoutes builds every handler once; nothing is mutated after startup
func (s *Server) setupRoutes(ctx context.Context) http.Handler {
	cfg := s.cfg

	renderer := service.NewRenderer()
	healthH := handler.NewHealthHandler(renderer, cfg.Version)
	auditLogger := security.NewAuditLogger(cfg.EnableAuditLogging)
	generateH := handler.NewGenerateHandler(renderer, auditLogger)

	log.Info().
		Str("addr", cfg.Addr()).
		Str("version", cfg.Version).
		Bool("debug", cfg.Debug).
		Strs("cors_origins", cfg.CORSOrigins).
		Int("rate_limit_per_minute", cfg.RateLimitPerMinute).
		Bool("audit_logging", cfg.EnableAuditLogging).
		Msg("service configuration")

	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))

	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitPerMinute))
		r.Post("/generate_tool", generateH.GenerateTool)
	})

	return r
}
