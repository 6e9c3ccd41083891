package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Unsplash UnsplashConfig
	Features FeaturesConfig
	OTEL     OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CatalogConfig holds the remote yacht catalog endpoint configuration
type CatalogConfig struct {
	URL             string
	TimeoutSeconds  int
	CacheTTLSeconds int
}

// UnsplashConfig holds the image search endpoint configuration
type UnsplashConfig struct {
	SearchURL      string
	TimeoutSeconds int
}

// FeaturesConfig holds feature flag values, read once at startup
type FeaturesConfig struct {
	UseSourceYachtImages bool
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			URL:             getEnv("CATALOG_API_URL", "https://pub-c204b30aa1fc4cf795de75e4b73955f1.r2.dev/yachts.json"),
			TimeoutSeconds:  getEnvAsInt("CATALOG_TIMEOUT_SECONDS", 10),
			CacheTTLSeconds: getEnvAsInt("CATALOG_CACHE_TTL_SECONDS", 3600),
		},
		Unsplash: UnsplashConfig{
			SearchURL:      getEnv("UNSPLASH_SEARCH_URL", "https://unsplash.com/napi/search/photos?query=yacht&per_page=30&page=1"),
			TimeoutSeconds: getEnvAsInt("UNSPLASH_TIMEOUT_SECONDS", 10),
		},
		Features: FeaturesConfig{
			UseSourceYachtImages: getEnvAsBool("USE_SOURCE_YACHT_IMAGES", false),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "yacht-charter-discovery"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// ServerAddr returns the host:port the HTTP server binds to
func (c *ServerConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
