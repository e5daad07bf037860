// Package config provides configuration loading for debated.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/debated/internal/logging"
)

// Config is the full debated configuration.
type Config struct {
	Debate     DebateConfig     `koanf:"debate"`
	Generation GenerationConfig `koanf:"generation"`
	Logging    logging.Config   `koanf:"logging"`
}

// DebateConfig controls a debate run.
type DebateConfig struct {
	// Topic is the fixed debate topic. Required; usually supplied on the
	// command line.
	Topic string `koanf:"topic"`

	// Rounds is how many times each persona speaks. The transcript holds
	// 2*Rounds turns.
	Rounds int `koanf:"rounds"`
}

// GenerationConfig controls the text generation backend.
type GenerationConfig struct {
	// BaseURL is an OpenAI-compatible completion endpoint. When empty the
	// deterministic offline generator is used instead.
	BaseURL string `koanf:"base_url"`

	// Model is the model identifier requested from the endpoint.
	Model string `koanf:"model"`

	// APIKey is optional for local servers.
	APIKey string `koanf:"api_key"`

	// Offline forces the deterministic hash generator even when a
	// BaseURL is configured.
	Offline bool `koanf:"offline"`
}

// DefaultConfig returns the hardcoded defaults.
func DefaultConfig() *Config {
	return &Config{
		Debate: DebateConfig{
			Rounds: 2,
		},
		Generation: GenerationConfig{
			Model: "Qwen/Qwen2-0.5B",
		},
		Logging: *logging.NewDefaultConfig(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Debate.Rounds <= 0 {
		return fmt.Errorf("debate.rounds must be positive, got %d", c.Debate.Rounds)
	}
	if c.Generation.BaseURL != "" && c.Generation.Model == "" {
		return fmt.Errorf("generation.model is required when generation.base_url is set")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
