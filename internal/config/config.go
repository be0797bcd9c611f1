package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// devSigningSecret is the fixed fallback key used when JWT_SECRET is not
// set. It is fine for local development and useless for anything else.
const devSigningSecret = "pagenote-dev-secret-do-not-deploy"

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	DatabasePath  string
	SigningSecret string
	TokenTTL      time.Duration
}

// Load loads configuration from the environment (and an optional .env file)
// or sets defaults.
func Load() (*Config, error) {
	// A missing .env is not an error; env vars always take precedence.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Warn().Msg("JWT_SECRET is not set, using the built-in development signing key")
		secret = devSigningSecret
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./pagenote.db"),
		SigningSecret: secret,
		TokenTTL:      ttl,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
