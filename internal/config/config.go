package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr            string
	UpstreamBaseURL string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SessionSecret   string
	SessionTTL      time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("STOREFRONT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	base := os.Getenv("UPSTREAM_BASE_URL")
	if base == "" {
		base = "https://tmdt251-be-production.up.railway.app"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	ttlHours := 72
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		}
	}

	return Config{
		Addr:            addr,
		UpstreamBaseURL: base,
		RedisAddr:       redisAddr,
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionTTL:      time.Duration(ttlHours) * time.Hour,
	}
}
