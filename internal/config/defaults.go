package config

import "time"

const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = 5000
	DefaultLogLevel = "info"

	// 0 disables rate limiting
	DefaultRateLimitPerMinute = 0

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

var DefaultCORSOrigins = []string{"*"}
