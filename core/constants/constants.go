package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Timeouts
const (
	DefaultTimeout         = 30 * time.Second
	ServerShutdownTimeout  = 10 * time.Second
	OutboundRequestTimeout = 15 * time.Second
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Auth settings
const (
	AccessTokenTTL      = 24 * time.Hour
	MaxLoginAttempts    = 5
	LoginBlockDuration  = 15 * time.Minute
	TokenBlacklistScope = "auth:blacklist:"
	LoginAttemptScope   = "auth:attempts:"
)

// Pagination defaults
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// Scheduling defaults used when config omits them.
const (
	DefaultFetchConcurrency = 5
	DefaultMaxSuggestions   = 10
)
