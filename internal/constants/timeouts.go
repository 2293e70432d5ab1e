package constants

import "time"

// Server timeouts.
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 20 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultRequestTimeout  = 15 * time.Second
)

// Database timeouts.
const (
	DBConnectionTimeout  = 30 * time.Second
	DBHealthCheckTimeout = 5 * time.Second
	DBConnMaxLifetime    = 1 * time.Hour
	DBConnMaxIdleTime    = 30 * time.Minute
)

// Token lifetimes.
const (
	DefaultJWTExpiry = 24 * time.Hour
)
