package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StoreDriver   string
	DatabaseURL   string
	EnableDBCheck bool
	// MigrationsPath is a golang-migrate source URL, e.g. file://migrations.
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	// RedisAddr switches the company lock to redsync when set.
	RedisAddr   string
	LockTimeout time.Duration

	StoreTimeout       time.Duration
	AdvisoryTimeout    time.Duration
	AdvisoryMaxRetries int
	OpenAIAPIKey       string
	OpenAIModel        string

	// RateLimit uses the ulule limiter format, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_DRIVER", StoreMemory)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "erp-ledger")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("LOCK_TIMEOUT", "5s")
	viper.SetDefault("STORE_TIMEOUT", "5s")
	viper.SetDefault("ADVISORY_TIMEOUT", "20s")
	viper.SetDefault("ADVISORY_MAX_RETRIES", 2)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		StoreDriver:        strings.ToLower(viper.GetString("STORE_DRIVER")),
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		RedisAddr:          viper.GetString("REDIS_ADDR"),
		LockTimeout:        durationOrDefault("LOCK_TIMEOUT", 5*time.Second),
		StoreTimeout:       durationOrDefault("STORE_TIMEOUT", 5*time.Second),
		AdvisoryTimeout:    durationOrDefault("ADVISORY_TIMEOUT", 20*time.Second),
		AdvisoryMaxRetries: viper.GetInt("ADVISORY_MAX_RETRIES"),
		OpenAIAPIKey:       viper.GetString("OPENAI_API_KEY"),
		OpenAIModel:        viper.GetString("OPENAI_MODEL"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: STORE_DRIVER is postgres but PGSQL_URL is not set.")
		}
	default:
		log.Printf("Warning: unknown STORE_DRIVER '%s'. Defaulting to %s.\n", cfg.StoreDriver, StoreMemory)
		cfg.StoreDriver = StoreMemory
	}

	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set. Financial insights will be unavailable.")
	}
	if cfg.AdvisoryMaxRetries < 0 {
		cfg.AdvisoryMaxRetries = 0
	}

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
