// Package config loads application configuration from the environment.
// A missing required setting is a startup-fatal configuration error; it is
// never handled at runtime.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider selects the structured-output LLM backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderCohere    Provider = "cohere"
)

// Config holds every setting the application reads. Three are required;
// provider keys are optional and their tools degrade gracefully without
// them.
type Config struct {
	// BaseURL model endpoint base
	BaseURL string `validate:"required,url"`
	// APIKey model access key
	APIKey string `validate:"required"`
	// ModelName model identifier
	ModelName string `validate:"required"`
	// Provider LLM backend, defaults to openai
	Provider Provider `validate:"oneof=openai anthropic cohere"`

	GNewsAPIKey    string
	GoogleAPIKey   string
	SearchEngineID string
}

// Load reads a .env file when present, then the environment, and validates
// the result. Returns an error describing the first missing required
// setting.
func Load() (*Config, error) {
	// Best effort: a missing .env file is fine, env vars may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:        os.Getenv("BASE_URL"),
		APIKey:         os.Getenv("API_KEY"),
		ModelName:      os.Getenv("MODEL_NAME"),
		Provider:       Provider(os.Getenv("LLM_PROVIDER")),
		GNewsAPIKey:    os.Getenv("GNEWS_API_KEY"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		SearchEngineID: os.Getenv("SEARCH_ENGINE_ID"),
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	if err := validator.New().Struct(cfg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return nil, fmt.Errorf("invalid configuration: %s (set BASE_URL, API_KEY and MODEL_NAME in your environment)", errs[0].StructField())
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
