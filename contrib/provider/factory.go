package provider

import (
	"context"
	"fmt"

	"github.com/sweetpotato0/docsum/config"
	"github.com/sweetpotato0/docsum/contrib/provider/claude"
	"github.com/sweetpotato0/docsum/contrib/provider/gemini"
	"github.com/sweetpotato0/docsum/contrib/provider/openai"
	"github.com/sweetpotato0/docsum/provider"
)

// FromSettings builds the backend client selected by the settings. The
// returned closer releases provider resources; it is non-nil even for
// providers that hold none.
func FromSettings(ctx context.Context, settings config.Settings) (provider.Client, func() error, error) {
	noop := func() error { return nil }

	switch settings.Provider {
	case "openai":
		cfg := openai.DefaultConfig().
			WithAPIKey(settings.OpenAIAPIKey).
			WithBaseURL(settings.OpenAIBaseURL)
		if settings.Model != "" {
			cfg.WithModel(settings.Model)
		}
		return openai.New(cfg), noop, nil

	case "claude":
		cfg := claude.DefaultConfig(settings.AnthropicAPIKey, "")
		if settings.Model != "" {
			cfg.Model = settings.Model
		}
		return claude.New(cfg), noop, nil

	case "gemini":
		cfg := gemini.DefaultConfig(settings.GeminiAPIKey)
		if settings.Model != "" {
			cfg.Model = settings.Model
		}
		client, err := gemini.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown provider %q", settings.Provider)
	}
}
