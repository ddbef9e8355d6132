package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	LogLevel        string
	FirebaseProject string
	StorageBucket   string

	// Credentials come from FIREBASE_SERVICE_ACCOUNT_JSON, then
	// FIREBASE_SERVICE_ACCOUNT_PATH, then application default credentials.
	ServiceAccountJSON string
	ServiceAccountPath string

	AllowedOrigins []string

	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	DeepSeekModel   string

	StripeSecretKey string
	DefaultCurrency string

	RedisAddr       string
	RedisPassword   string
	CatalogCacheTTL time.Duration

	// Used when the caller does not send a usable position to the map endpoints.
	DefaultLatitude  float64
	DefaultLongitude float64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),

		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS"),

		DeepSeekAPIKey:  getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekBaseURL: getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),
		DeepSeekModel:   getEnv("DEEPSEEK_MODEL", "deepseek-chat"),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "inr"),

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogCacheTTL: time.Duration(getEnvAsInt64("CATALOG_CACHE_TTL_SECONDS", 30)) * time.Second,

		DefaultLatitude:  getEnvAsFloat("DEFAULT_LATITUDE", 28.6139),
		DefaultLongitude: getEnvAsFloat("DEFAULT_LONGITUDE", 77.2090),
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
