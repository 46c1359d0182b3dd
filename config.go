package main

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the platform binary.
type Config struct {
	Port      string
	Env       string
	JWTSecret string
	JWTTTL    time.Duration
	RedisURL  string
	CacheTTL  time.Duration
}

// LoadConfig reads configuration from environment variables with defaults.
// Database settings are read by the database package itself.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "4000"),
		Env:       getEnv("APP_ENV", "development"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    7 * 24 * time.Hour,
		RedisURL:  os.Getenv("REDIS_URL"),
		CacheTTL:  5 * time.Minute,
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
		}
		cfg.JWTTTL = d
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
