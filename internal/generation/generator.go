package generation

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Common errors for generation operations.
var (
	// ErrEmptyResponse indicates the generator returned no usable text.
	ErrEmptyResponse = errors.New("generator returned empty response")

	// ErrInvalidConfig indicates invalid generator configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// Generator produces raw text for a prompt. It is the port to the
// underlying model: implementations may fail or return empty text, and the
// Producer recovers from both.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Config holds configuration for the OpenAI-compatible generator.
type Config struct {
	// BaseURL is the completion endpoint. Any OpenAI-compatible server
	// works, e.g. http://localhost:8000/v1 for a local model.
	BaseURL string

	// Model is the model identifier, e.g. Qwen/Qwen2-0.5B.
	Model string

	// APIKey is optional for local servers.
	APIKey string
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidConfig)
	}
	return nil
}

// Sampling parameters mirror the reference model setup.
const (
	samplingTemperature = 0.8
	samplingTopP        = 0.9
)

// OpenAIGenerator calls an OpenAI-compatible completion endpoint through
// langchaingo.
type OpenAIGenerator struct {
	llm *openai.LLM
}

// NewOpenAIGenerator creates a generator for the configured endpoint.
func NewOpenAIGenerator(cfg Config) (*OpenAIGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []openai.Option{openai.WithModel(cfg.Model)}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	token := cfg.APIKey
	if token == "" {
		// langchaingo requires a token even when the local server ignores it
		token = "unused"
	}
	opts = append(opts, openai.WithToken(token))

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return &OpenAIGenerator{llm: llm}, nil
}

// Generate requests a completion for prompt, bounded by maxTokens.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithMaxTokens(maxTokens),
		llms.WithTemperature(samplingTemperature),
		llms.WithTopP(samplingTopP),
	)
}

// HashGenerator is a deterministic Generator keyed by a digest of the
// prompt. The same prompt always yields the same text, which keeps offline
// runs and tests reproducible without a live model.
type HashGenerator struct{}

// NewHashGenerator creates a deterministic offline generator.
func NewHashGenerator() *HashGenerator {
	return &HashGenerator{}
}

// Generate derives text from the prompt digest. Never fails.
func (g *HashGenerator) Generate(_ context.Context, prompt string, _ int) (string, error) {
	return fmt.Sprintf("(fallback generated argument %s)", promptDigest(prompt)), nil
}

// promptDigest returns the first 6 hex characters of the SHA-1 digest of
// prompt.
func promptDigest(prompt string) string {
	sum := sha1.Sum([]byte(prompt))
	return hex.EncodeToString(sum[:])[:6]
}
