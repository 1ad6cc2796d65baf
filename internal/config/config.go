package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port         string
	Env          string
	JWTSecret    string
	TokenExpiry  time.Duration // zero means issued tokens never expire
	DatabaseURL  string
	DatabaseName string

	// Set-flags are reported by the diagnostics endpoint.
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8000"),
		Env:          getEnv("ENV", "development"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenExpiry:  getDuration("TOKEN_EXPIRY", 0),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "pulselytics"),
	}

	cfg.DatabaseURLSet = os.Getenv("DATABASE_URL") != ""
	cfg.DatabaseNameSet = os.Getenv("DATABASE_NAME") != ""

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-me" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using fallback", "key", key, "value", v)
		return fallback
	}
	return d
}
