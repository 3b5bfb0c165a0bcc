package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// NaverClientID is safe to expose (the map widget uses it client-side);
	// NaverClientSecret is server-only and must never leave the process.
	NaverClientID     string
	NaverClientSecret string

	AppVersion string
	BuildTime  string

	StorageBackend string // "redis" | "memory"
	RedisHost      string
	RedisPort      string
	CacheEnabled   bool
	CacheTTL       time.Duration
}

// Load reads configuration from the environment, with an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		NaverClientID:     getEnv("NAVER_MAP_CLIENT_ID", ""),
		NaverClientSecret: getEnv("NAVER_MAP_CLIENT_SECRET", ""),
		AppVersion:        getEnv("APP_VERSION", "dev"),
		BuildTime:         getEnv("BUILD_TIME", ""),
		StorageBackend:    getEnv("STORAGE_BACKEND", "redis"),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		CacheEnabled:      getEnvBool("CACHE_ENABLED", true),
		CacheTTL:          getEnvDuration("CACHE_TTL", 10*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
