package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.Debate.Rounds)
	assert.Equal(t, "Qwen/Qwen2-0.5B", cfg.Generation.Model)
	assert.Empty(t, cfg.Generation.BaseURL, "no endpoint by default, offline generator is used")
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero rounds",
			mutate:  func(c *Config) { c.Debate.Rounds = 0 },
			wantErr: "rounds must be positive",
		},
		{
			name:    "negative rounds",
			mutate:  func(c *Config) { c.Debate.Rounds = -3 },
			wantErr: "rounds must be positive",
		},
		{
			name: "endpoint without model",
			mutate: func(c *Config) {
				c.Generation.BaseURL = "http://localhost:8000/v1"
				c.Generation.Model = ""
			},
			wantErr: "generation.model is required",
		},
		{
			name:    "bad logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "format must be 'json' or 'console'",
		},
		{
			name:    "bad logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
