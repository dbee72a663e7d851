package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sweetpotato0/docsum/provider"
)

// Config holds Gemini provider configuration
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int32
	Temperature float32
}

// DefaultConfig returns default Gemini configuration
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey:      apiKey,
		Model:       "gemini-1.5-flash",
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Client implements provider.Client for Google Gemini.
type Client struct {
	config *Config
	client *genai.Client
	model  *genai.GenerativeModel
}

// New creates a new Gemini client using the official SDK.
func New(ctx context.Context, config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig("")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key not configured")
	}
	if config.Model == "" {
		config.Model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := client.GenerativeModel(config.Model)
	if config.Temperature > 0 {
		model.SetTemperature(config.Temperature)
	}
	if config.MaxTokens > 0 {
		model.SetMaxOutputTokens(config.MaxTokens)
	}

	return &Client{
		config: config,
		client: client,
		model:  model,
	}, nil
}

// Invoke sends the composed prompt and concatenates the text parts of the
// first candidate.
func (c *Client) Invoke(ctx context.Context, prompt string) (provider.Response, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no candidates returned from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("no text content returned from Gemini")
	}

	return provider.StructuredValue{
		Content: sb.String(),
		Model:   c.config.Model,
	}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}
