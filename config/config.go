package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	JWTSecret string

	RedisAddr       string
	RedisPassword   string
	IssueLimitQueue string
	IssueDailyLimit int

	SimulatedLatency time.Duration
	SeedDemoData     bool
	CORSOrigins      []string
}

// Load reads the configuration from the environment. Call after
// godotenv has populated it.
func Load() Config {
	return Config{
		AppEnv:           getenv("APP_ENV", "dev"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		RedisAddr:        os.Getenv("REDIS_ADDRESS"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		IssueLimitQueue:  getenv("REDIS_QUEUE_FOR_ISSUE_LIMIT", "issue_limit"),
		IssueDailyLimit:  atoi("ISSUE_DAILY_LIMIT", 10),
		SimulatedLatency: time.Duration(atoi("SIMULATED_LATENCY_MS", 0)) * time.Millisecond,
		SeedDemoData:     getenv("SEED_DEMO_DATA", "false") == "true",
		CORSOrigins:      split(getenv("CORS_ORIGINS", "http://localhost:5173")),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoi(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func split(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
