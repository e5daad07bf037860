package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/debated/internal/config"
	"github.com/fyrsmithlabs/debated/internal/debate"
	"github.com/fyrsmithlabs/debated/internal/generation"
	"github.com/fyrsmithlabs/debated/internal/graphexport"
	"github.com/fyrsmithlabs/debated/internal/judge"
	"github.com/fyrsmithlabs/debated/internal/logging"
	"github.com/fyrsmithlabs/debated/internal/memory"
)

var (
	flagConfig   string
	flagTopic    string
	flagRounds   int
	flagOffline  bool
	flagJSON     bool
	flagGraphOut string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a debate and print the verdict",
	Long: `Run a debate between the Scientist and the Philosopher.

Examples:
  # Two rounds against a local OpenAI-compatible server
  DEBATED_GENERATION_BASE_URL=http://localhost:8000/v1 debated run --topic "Is AI conscious?"

  # Deterministic offline run, verdict as JSON
  debated run --topic "Is AI conscious?" --offline --json

  # Export the transcript graph
  debated run --topic "Is AI conscious?" --offline --graph-out debate.dot`,
	Args: cobra.NoArgs,
	RunE: runDebate,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	runCmd.Flags().StringVar(&flagTopic, "topic", "", "debate topic (required unless set in config)")
	runCmd.Flags().IntVar(&flagRounds, "rounds", 0, "rounds per persona (default from config)")
	runCmd.Flags().BoolVar(&flagOffline, "offline", false, "use the deterministic generator instead of a model")
	runCmd.Flags().BoolVar(&flagJSON, "json", false, "print the verdict as JSON")
	runCmd.Flags().StringVar(&flagGraphOut, "graph-out", "", "write a DOT graph of the transcript to this path")
}

func runDebate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagTopic != "" {
		cfg.Debate.Topic = flagTopic
	}
	if flagRounds > 0 {
		cfg.Debate.Rounds = flagRounds
	}
	if flagOffline {
		cfg.Generation.Offline = true
	}
	if cfg.Debate.Topic == "" {
		return fmt.Errorf("topic is required: pass --topic or set debate.topic in config")
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gen, err := buildGenerator(cfg.Generation)
	if err != nil {
		return err
	}

	metrics := generation.NewMetrics(prometheus.NewRegistry())
	producer, err := generation.NewProducer(gen, logger.Named("generation"), metrics)
	if err != nil {
		return err
	}

	scientist, err := debate.NewAgent(debate.SpeakerScientist, producer, logger.Named("scientist"))
	if err != nil {
		return err
	}
	philosopher, err := debate.NewAgent(debate.SpeakerPhilosopher, producer, logger.Named("philosopher"))
	if err != nil {
		return err
	}

	store := memory.NewStore()
	orch, err := debate.NewOrchestrator(scientist, philosopher, store, logger.Named("debate"))
	if err != nil {
		return err
	}

	if _, err := orch.Run(cmd.Context(), cfg.Debate.Topic, cfg.Debate.Rounds); err != nil {
		return err
	}

	verdict := judge.Run(store.Turns(), cfg.Debate.Topic)

	if flagGraphOut != "" {
		path, err := graphexport.Export(store.Turns(), flagGraphOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "graph written to %s\n", path)
	}

	if flagJSON {
		out, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal verdict: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderVerdict(verdict))
	return nil
}

// buildGenerator selects the generation backend: the deterministic hash
// generator offline or when no endpoint is configured, the
// OpenAI-compatible client otherwise.
func buildGenerator(cfg config.GenerationConfig) (generation.Generator, error) {
	if cfg.Offline || cfg.BaseURL == "" {
		return generation.NewHashGenerator(), nil
	}
	return generation.NewOpenAIGenerator(generation.Config{
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
	})
}

// renderVerdict formats a verdict for terminal output.
func renderVerdict(v judge.Verdict) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", v.Topic)
	if v.Summary != "" {
		b.WriteString("\n")
		b.WriteString(v.Summary)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nWinner: %s\n%s\n", v.Winner, v.Justification)
	return b.String()
}
