package config

import (
	"os"
	"strconv"
)

// Config holds the service configuration, loaded from the environment.
type Config struct {
	Port string

	// Upload limits
	MaxUploadBytes int64

	// Parse tuning
	HeadingThreshold float64
	SplitThreshold   int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 26214400), // 25MB

		HeadingThreshold: envFloat("HEADING_THRESHOLD", 11.0),
		SplitThreshold:   envInt("SPLIT_THRESHOLD", 600),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 26214400
	}
	if cfg.HeadingThreshold <= 0 {
		cfg.HeadingThreshold = 11.0
	}
	if cfg.SplitThreshold <= 0 {
		cfg.SplitThreshold = 600
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
