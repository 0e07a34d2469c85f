package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	CurrencyGlyph string // glyph stripped by the value normalizer, e.g. "₹"
	MaxUploadMB   int64
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:          get("PORT", "8080"),
		GinMode:       get("GIN_MODE", "release"),
		LogLevel:      get("LOG_LEVEL", "info"),
		CurrencyGlyph: get("CURRENCY_GLYPH", "₹"),
		MaxUploadMB:   getInt64("MAX_UPLOAD_MB", 16),
	}
	return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}
