package security

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/rs/zerolog/log"
)

// AuditLogger records generation events. User supplied text is logged
// only as a truncated SHA-256; the language is logged in clear only when
// it is one of the supported targets.
type AuditLogger struct {
	enabled bool
}

func NewAuditLogger(enabled bool) *AuditLogger {
	return &AuditLogger{enabled: enabled}
}

// GenerationEvent describes one POST /generate_tool call
type GenerationEvent struct {
	RequestID       string
	ToolName        string
	Description     string
	Language        string
	CodeStyle       string
	IncludeComments bool
	Supported       bool
	CodeBytes       int
}

func (a *AuditLogger) LogGeneration(e GenerationEvent) {
	if !a.enabled {
		return
	}
	log.Info().
		Str("event", "generation_audit").
		Str("request_id", e.RequestID).
		Str("tool_name_hash", HashString(e.ToolName)).
		Str("description_hash", HashString(e.Description)).
		Str("language", LanguageLabel(e.Language, e.Supported)).
		Str("code_style", e.CodeStyle).
		Bool("include_comments", e.IncludeComments).
		Bool("supported", e.Supported).
		Int("code_bytes", e.CodeBytes).
		Msg("audit")
}

// LanguageLabel returns lang when supported, otherwise its hash prefixed
// with "unsupported:"
func LanguageLabel(lang string, supported bool) string {
	if supported {
		return lang
	}
	return "unsupported:" + HashString(lang)
}

// HashString returns the first 16 hex characters of the SHA-256 of s
func HashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])[:16]
}
