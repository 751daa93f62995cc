package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration, loaded from the environment
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisURI      string
	JWTSecret     string

	// CronToken authenticates the external scheduler calling the batch endpoint
	CronToken string

	// Recommendation tunables
	TopK       int
	MinEntries int

	// MinCompleted is the engagement gate: historical completed questions
	// required before a user gets a new weekly set
	MinCompleted int

	LookbackDays       int
	ActivityWindowDays int

	// Batch execution
	BatchWorkers int
	BatchTimeout time.Duration
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "reflektdb"),
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", "super-secret-key-change-in-production"),
		CronToken:     os.Getenv("CRON_TOKEN"),

		TopK:               getEnvInt("RECO_TOP_K", 5),
		MinEntries:         getEnvInt("RECO_MIN_ENTRIES", 3),
		MinCompleted:       getEnvInt("RECO_MIN_COMPLETED", 3),
		LookbackDays:       getEnvInt("RECO_LOOKBACK_DAYS", 14),
		ActivityWindowDays: getEnvInt("RECO_ACTIVITY_WINDOW_DAYS", 30),

		BatchWorkers: getEnvInt("BATCH_WORKERS", 8),
		BatchTimeout: time.Duration(getEnvInt("BATCH_TIMEOUT_SEC", 300)) * time.Second,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
