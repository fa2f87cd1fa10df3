package utils

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// REVISION is reported in the startup banner and API responses.
const REVISION = "v1.2.0"

type Config struct {
	Env              string `mapstructure:"ENV"`
	ServerPort       int    `mapstructure:"SERVER_PORT" validate:"required"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	AttentiveAPIKey  string `mapstructure:"ATTENTIVE_API_KEY"`
	AttentiveBaseURL string `mapstructure:"ATTENTIVE_BASE_URL"`
	WebhookSecret    string `mapstructure:"ATTENTIVE_WEBHOOK_SECRET"`
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()

	v.SetEnvPrefix("")
	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		// Environment variables can still provide everything
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The API key is deliberately not required here: the transport layer
	// reports a missing credential as an auth failure per request.
	if config.AttentiveAPIKey == "" {
		log.Printf("Warning: ATTENTIVE_API_KEY is not set, API calls will fail")
	}

	return nil
}

// Redact masks credentials for logging.
func (c *Config) Redact() Config {
	redacted := *c
	if redacted.AttentiveAPIKey != "" {
		redacted.AttentiveAPIKey = "****"
	}
	if redacted.WebhookSecret != "" {
		redacted.WebhookSecret = "****"
	}
	return redacted
}
