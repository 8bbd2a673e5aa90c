package config

import (
	"os"
	"strings"

	"github.com/whatsapp-orchestrator/internal/pkg/validate"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort  string `validate:"required,numeric"`
	AppEnv   string `validate:"oneof=development staging production"`
	LogLevel string `validate:"oneof=trace debug info warn error fatal panic disabled"`

	// VerifyToken is the shared secret for the subscription handshake.
	// No default: when empty every verification attempt fails.
	VerifyToken string
	// VerifyTokenSecretID names a Secrets Manager entry read once at startup
	// when VerifyToken is not set directly.
	VerifyTokenSecretID string

	AWSRegion      string `validate:"required"`
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	AllowedOrigins []string // CORS allowed origins for the health-check group
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:             getEnv("APP_PORT", "3000"),
		AppEnv:              getEnv("APP_ENV", "development"),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		VerifyToken:         os.Getenv("VERIFY_TOKEN"),
		VerifyTokenSecretID: getEnv("VERIFY_TOKEN_SECRET_ID", ""),
		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL:      getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:        getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AllowedOrigins:      strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// Validate checks the structural settings. VerifyToken is not required:
// an unset token fails every handshake.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
