package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	DBUrl       string
	// Shared secret of the external auth service that issues access tokens
	JWTSecret string
	// Comma separated list of origins allowed by CORS and the websocket upgrader
	AllowedOrigins []string
	// Redis configuration (rate limiting + realtime fan-out)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitSwipeThreshold  int
	RunMigrations            bool
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; missing file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		RedisURL:       getEnv("REDIS_URL", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		RateLimitSwipeThreshold:  getEnvInt("RATE_LIMIT_SWIPE_THRESHOLD", 120),
		RunMigrations:            getEnvBool("RUN_MIGRATIONS", true),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Every authenticated request will be rejected.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting and realtime events stay in-process.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
