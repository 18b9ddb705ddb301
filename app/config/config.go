package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment represents the runtime environment
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// Config holds all configuration for the API service.
// It is constructed once at startup and never mutated afterwards;
// components that need secrets (e.g. the token service) receive them
// explicitly instead of reading the environment themselves.
type Config struct {
	// Server
	Env      Environment
	Port     string
	Host     string
	LogLevel string

	// Database
	MongoURI string
	MongoDB  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// CORS
	CORSOrigin string

	// Password hashing
	BcryptCost int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Env = Environment(getEnvOrDefault("GO_ENV", string(EnvDevelopment)))
	config.Port = getEnvOrDefault("PORT", "3000")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.MongoURI = os.Getenv("MONGODB_URI")
	if config.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	config.MongoDB = getEnvOrDefault("MONGODB_DB", "boilerplate")

	// JWT configuration
	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	expiryStr := getEnvOrDefault("JWT_EXPIRY", "24h")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY: %w", err)
	}
	config.JWTExpiry = expiry

	// CORS configuration
	config.CORSOrigin = getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173")

	// Password hashing configuration
	costStr := getEnvOrDefault("BCRYPT_COST", "12")
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	config.BcryptCost = cost

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate environment
	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("invalid GO_ENV: %s (must be one of: development, production, test)", c.Env)
	}

	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate JWT expiry (minimum 1 minute)
	if c.JWTExpiry < time.Minute {
		return fmt.Errorf("JWT expiry must be at least 1 minute, got: %v", c.JWTExpiry)
	}

	// Validate bcrypt cost (bcrypt library bounds)
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31, got: %d", c.BcryptCost)
	}

	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
