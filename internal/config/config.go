package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingBaseURL means the API base URL is absent from the environment.
// This is a fatal configuration fault, not something an operation can recover
// from at runtime.
var ErrMissingBaseURL = errors.New("config: API_BASE_URL is required")

var AppEnv Config

type Config struct {
	APIBaseURL     string
	EncryptionKey  string
	JWTSecret      string
	Port           string
	AccessTokenTTL time.Duration
	HTTPTimeout    time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		APIBaseURL:     getEnvOrDefault("API_BASE_URL", ""),
		EncryptionKey:  getEnvOrDefault("ENCRYPTION_KEY", ""),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		Port:           getEnvOrDefault("PORT", "8080"),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		HTTPTimeout:    getDurationEnv("HTTP_TIMEOUT", 30, time.Second),
	}
}

// Validate reports the fields the sync client cannot run without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return ErrMissingBaseURL
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
