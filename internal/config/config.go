package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// MaxBodyBytes caps the size of request bodies accepted on mutating
	// endpoints. Oversized bodies are rejected with 413 before a handler
	// runs.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"required,gt=0"`

	// RateLimitRPS and RateLimitBurst configure the process-wide request
	// limiter. Zero disables limiting.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"   validate:"gte=0"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" validate:"gte=0"`
}
