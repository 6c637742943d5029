// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
	GetDBPoolMaxConns() int32
	GetDBPoolMinConns() int32
}

// RedisConfig provides redis connection settings for the manager-backed store.
type RedisConfig interface {
	GetRedisURL() string
}

// PhoneConfig provides settings for phone number display formatting.
type PhoneConfig interface {
	GetDefaultRegion() string
}

// FlagsConfig provides the runtime feature flag state.
type FlagsConfig interface {
	GetUseBlockedNumbersManager() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env                     string
	HTTPAddr                string
	DatabaseURL             string
	DBPoolMaxConns          int32
	DBPoolMinConns          int32
	RedisURL                string
	DefaultRegion           string
	UseBlockedNumbersMgr    bool
	CORSAllowAll            bool
	CORSOrigins             []string
	RateLimitPerSecond      float64
	RateLimitBurst          int
	EnhancedBlockingDefault bool
}

// Load reads configuration from the environment, with .env support.
func Load() (*Config, error) {
	loadDotEnv()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                     getEnv("APP_ENV", "development"),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		DBPoolMaxConns:          int32(mustInt(getEnv("DB_POOL_MAX_CONNS", "10"))),
		DBPoolMinConns:          int32(mustInt(getEnv("DB_POOL_MIN_CONNS", "2"))),
		RedisURL:                getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DefaultRegion:           getEnv("DEFAULT_REGION", "US"),
		UseBlockedNumbersMgr:    strings.EqualFold(getEnv("USE_BLOCKED_NUMBERS_MANAGER", "false"), "true"),
		CORSAllowAll:            corsAllowAll,
		CORSOrigins:             corsOrigins,
		RateLimitPerSecond:      mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "20")),
		RateLimitBurst:          mustInt(getEnv("RATE_LIMIT_BURST", "40")),
		EnhancedBlockingDefault: strings.EqualFold(getEnv("ENHANCED_BLOCKING_DEFAULT", "false"), "true"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	return cfg, nil
}

func (c *Config) GetDatabaseURL() string            { return c.DatabaseURL }
func (c *Config) GetDBPoolMaxConns() int32          { return c.DBPoolMaxConns }
func (c *Config) GetDBPoolMinConns() int32          { return c.DBPoolMinConns }
func (c *Config) GetRedisURL() string               { return c.RedisURL }
func (c *Config) GetDefaultRegion() string          { return c.DefaultRegion }
func (c *Config) GetUseBlockedNumbersManager() bool { return c.UseBlockedNumbersMgr }
func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool             { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
