package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	ServerAddr         string
	DatabaseURL        string
	MongoDB            string
	FrontendOrigins    []string
	RateLimitContact   int
	RateLimitWindowSec int
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisPrefix        string
	CacheTTLSeconds    int
	BrevoAPIKey        string
	BrevoSenderEmail   string
	BrevoSenderName    string
	BrevoSandbox       bool
	ContactInbox       string
	ImagesDir          string
	UploadsDir         string
	ServerTiming       bool
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first; variables already set win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MongoDB:            getEnv("MONGO_DB", ""),
		FrontendOrigins:    splitList(getEnv("FRONTEND_ORIGIN", "http://localhost:5173")),
		RateLimitContact:   getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPrefix:        getEnv("REDIS_PREFIX", "repaired:"),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 60),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail:   getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:    getEnv("BREVO_SENDER_NAME", "repaired.co"),
		BrevoSandbox:       getEnvBool("BREVO_SANDBOX", false),
		ContactInbox:       getEnv("CONTACT_INBOX", ""),
		ImagesDir:          getEnv("IMAGES_DIR", "public/images"),
		UploadsDir:         getEnv("UPLOADS_DIR", "public/uploads"),
	}
	cfg.ServerTiming = getEnvBool("SERVER_TIMING", cfg.Env != "production")

	return cfg, nil
}

// CacheEnabled reports whether a redis target is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" || c.RedisAddr != ""
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
