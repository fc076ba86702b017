package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

var (
	AppName            string
	DatabaseURL        string
	OpenRouterAPIKey   string
	OpenRouterModel    string
	OpenRouterBaseURL  string
	OpenLibraryBaseURL string
	KeywordsFile       string
	RequestTimeout     time.Duration
)

const (
	defaultOpenRouterBaseURL  = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenLibraryBaseURL = "https://openlibrary.org"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn("⚠️ .env file not found, using system environment")
		} else {
			log.Info("✅ .env file loaded")
		}
	} else {
		log.Info("🚀 Running in Railway, using system environment")
	}

	AppName = GetEnv("APP_NAME", "EVSU Library API")
	DatabaseURL = GetEnv("DATABASE_URL")
	OpenRouterAPIKey = GetEnv("OPENROUTER_API_KEY")
	OpenRouterModel = GetEnv("OPENROUTER_MODEL")
	OpenRouterBaseURL = GetEnv("OPENROUTER_BASE_URL", defaultOpenRouterBaseURL)
	OpenLibraryBaseURL = GetEnv("OPENLIBRARY_BASE_URL", defaultOpenLibraryBaseURL)
	KeywordsFile = GetEnv("ASSISTANT_KEYWORDS_FILE")
	RequestTimeout = GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)

	if OpenRouterAPIKey == "" {
		log.Warn("❌ OPENROUTER_API_KEY is not set, assistant calls will be rejected upstream")
	}
	if OpenRouterModel == "" {
		log.Warn("❌ OPENROUTER_MODEL is not set")
	} else {
		log.Infof("✅ OPENROUTER_MODEL=%s", OpenRouterModel)
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("[CONFIG] %s=%q is not an integer, using %d", key, v, defaultValue)
		return defaultValue
	}
	return n
}

func GetEnvBool(key string, defaultValue bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

// GetEnvDuration menerima "20s", "1m" atau angka polos (detik).
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Warnf("[CONFIG] %s=%q is not a duration, using %s", key, v, defaultValue)
	return defaultValue
}
