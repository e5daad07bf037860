package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/debated/internal/config"
	"github.com/fyrsmithlabs/debated/internal/debate"
	"github.com/fyrsmithlabs/debated/internal/generation"
	"github.com/fyrsmithlabs/debated/internal/judge"
)

func TestBuildGenerator(t *testing.T) {
	t.Parallel()

	t.Run("offline flag forces hash generator", func(t *testing.T) {
		t.Parallel()
		gen, err := buildGenerator(config.GenerationConfig{
			BaseURL: "http://localhost:8000/v1",
			Model:   "Qwen/Qwen2-0.5B",
			Offline: true,
		})
		require.NoError(t, err)
		assert.IsType(t, &generation.HashGenerator{}, gen)
	})

	t.Run("no endpoint falls back to hash generator", func(t *testing.T) {
		t.Parallel()
		gen, err := buildGenerator(config.GenerationConfig{Model: "Qwen/Qwen2-0.5B"})
		require.NoError(t, err)
		assert.IsType(t, &generation.HashGenerator{}, gen)
	})

	t.Run("endpoint selects openai generator", func(t *testing.T) {
		t.Parallel()
		gen, err := buildGenerator(config.GenerationConfig{
			BaseURL: "http://localhost:8000/v1",
			Model:   "Qwen/Qwen2-0.5B",
		})
		require.NoError(t, err)
		assert.IsType(t, &generation.OpenAIGenerator{}, gen)
	})
}

func TestRenderVerdict(t *testing.T) {
	t.Parallel()

	t.Run("full verdict", func(t *testing.T) {
		t.Parallel()
		out := renderVerdict(judge.Verdict{
			Topic:         "Is AI conscious?",
			Winner:        judge.WinnerScientist,
			Justification: "Scientist scored 6.00 vs Philosopher 1.00 (higher novelty/content).",
			Summary:       "Round 1 [Scientist]: Evidence first.",
			Scores: map[debate.Speaker]float64{
				debate.SpeakerScientist:   6,
				debate.SpeakerPhilosopher: 1,
			},
		})

		assert.Contains(t, out, "Topic: Is AI conscious?")
		assert.Contains(t, out, "Round 1 [Scientist]: Evidence first.")
		assert.Contains(t, out, "Winner: Scientist")
		assert.Contains(t, out, "Scientist scored 6.00")
	})

	t.Run("no debate", func(t *testing.T) {
		t.Parallel()
		out := renderVerdict(judge.Verdict{
			Topic:         "silence",
			Winner:        judge.WinnerNoDebate,
			Justification: "No arguments were made.",
		})

		assert.Contains(t, out, "Winner: NoDebate")
		assert.NotContains(t, out, "Round")
	})
}
