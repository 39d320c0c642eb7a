package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	RedisAddr     string
	RedisPassword string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	WebhookRateLimit string
	CORSOrigin       string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_FROM_NUMBER", "")
	viper.SetDefault("WEBHOOK_RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Redis is optional. Without it dedup is disabled and webhook retries
	// are processed at-least-once.
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")

	cfg.TwilioAccountSID = viper.GetString("TWILIO_ACCOUNT_SID")
	cfg.TwilioAuthToken = viper.GetString("TWILIO_AUTH_TOKEN")
	cfg.TwilioFromNumber = viper.GetString("TWILIO_FROM_NUMBER")
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		log.Println("Warning: Twilio credentials not set. Outbound replies will fail.")
	}

	cfg.WebhookRateLimit = viper.GetString("WEBHOOK_RATE_LIMIT")
	cfg.CORSOrigin = viper.GetString("CORS_ORIGIN")

	return cfg, nil
}
