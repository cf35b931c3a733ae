package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mdnaeem95/purifai-mobile/src/models"
)

// AppConfig holds all configuration for the application.
// The values are loaded from environment variables.
type AppConfig struct {
	// Core settings
	Port         string
	DatabasePath string
	LogLevel     string

	// Household settings
	Currency       string
	SelfMemberName string

	// Record cache
	RecordCacheTTL time.Duration

	// HTTP limits
	RateLimitRPS   int
	RateLimitBurst int
	AllowedOrigins []string

	// Nisab reference loaded at startup
	Nisab models.NisabReference
}

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file.
func LoadConfig() {
	// 1. Try loading from the current directory
	errEnv := godotenv.Load()

	// 2. If not found, try the parent directory
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}

	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found in current or parent directory. Relying on OS environment variables.")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	Cfg = loadFromEnv()

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, Currency=%s, Nisab=%.2f",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.Currency, Cfg.Nisab.MonetaryThreshold)
}

func loadFromEnv() *AppConfig {
	currency := getEnv("CURRENCY", models.DefaultCurrency)

	nisab := models.NisabReference{
		MonetaryThreshold:   getEnvAsPositiveFloat("NISAB_MONETARY", models.DefaultNisabMonetary),
		GoldWeightThreshold: getEnvAsPositiveFloat("NISAB_GOLD_WEIGHT", models.DefaultNisabGoldWeight),
		GoldPricePerGram:    getEnvAsPositiveFloat("NISAB_GOLD_PRICE", models.DefaultNisabGoldPrice),
		UpdatedDate:         getEnv("NISAB_UPDATED_DATE", models.DefaultNisabUpdatedDate),
		Currency:            currency,
	}

	return &AppConfig{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./purifai.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		Currency:       currency,
		SelfMemberName: getEnv("SELF_MEMBER_NAME", "Self"),

		RecordCacheTTL: getEnvAsDuration("RECORD_CACHE_TTL", 15*time.Minute),

		RateLimitRPS:   getEnvAsInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 30),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", "http://localhost:8081,http://localhost:19006"),

		Nisab: nisab,
	}
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer or returns a fallback.
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

// getEnvAsPositiveFloat retrieves a strictly positive number or returns a fallback.
func getEnvAsPositiveFloat(key string, fallback float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	log.Printf("Invalid positive number for %s ('%s'), using default: %v", key, valueStr, fallback)
	return fallback
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a fallback.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key, fallback string) []string {
	var items []string
	for _, item := range strings.Split(getEnv(key, fallback), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
