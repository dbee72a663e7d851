package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-level configuration read from the environment.
// Per-invocation summary options are passed explicitly and do not live here.
type Settings struct {
	// Provider selects the summarization backend: openai, claude or gemini.
	Provider string `env:"DOCSUM_PROVIDER" envDefault:"openai"`
	// Model overrides the provider's default model name.
	Model string `env:"DOCSUM_MODEL"`

	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_API_BASE_URL"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`

	DisableTelemetry bool `env:"DOCSUM_DISABLE_TELEMETRY"`
}

// Load reads Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the settings describe a usable backend.
func (s Settings) Validate() error {
	v := NewValidator()
	v.ValidateOneOf("provider", s.Provider, "openai", "claude", "gemini")
	return v.Error()
}
