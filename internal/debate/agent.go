package debate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// argumentTokenBudget is the fixed generation budget per argument.
	argumentTokenBudget = 120

	// noPriorArgument substitutes for the opponent's argument before the
	// opponent has spoken.
	noPriorArgument = "No prior argument."
)

// ArgumentProducer yields one well-formed argumentative sentence for a
// prompt. Implementations never fail: exhausted generation degrades to a
// deterministic fallback sentence.
type ArgumentProducer interface {
	Produce(ctx context.Context, prompt string, maxTokens int) string
}

// Agent is one debate persona. It is stateless across calls: everything it
// reads and writes flows through the State passed to Act.
type Agent struct {
	role     Speaker
	producer ArgumentProducer
	logger   *zap.Logger
}

// NewAgent creates an agent for the given persona.
func NewAgent(role Speaker, producer ArgumentProducer, logger *zap.Logger) (*Agent, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSpeaker, role)
	}
	if producer == nil {
		return nil, fmt.Errorf("argument producer cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Agent{
		role:     role,
		producer: producer,
		logger:   logger,
	}, nil
}

// Role returns the persona this agent argues as.
func (a *Agent) Role() Speaker {
	return a.role
}

// Act reads the opponent's latest argument from state, produces a reply,
// and appends it to the transcript. The appended turn is returned.
func (a *Agent) Act(ctx context.Context, state *State) Turn {
	opponentArg, ok := state.LastArgument(a.role.Opponent())
	if !ok {
		opponentArg = noPriorArgument
	}

	prompt := buildPrompt(a.role, state.Topic(), opponentArg)
	argument := a.producer.Produce(ctx, prompt, argumentTokenBudget)

	turn := state.Append(a.role, argument)
	a.logger.Debug("argument produced",
		zap.Int("round", turn.Round),
		zap.String("speaker", turn.Speaker.String()),
		zap.Int("argument_len", len(argument)))
	return turn
}

// buildPrompt embeds the persona, topic, and opponent's last argument into
// the instruction for one concise role-flavored sentence.
func buildPrompt(role Speaker, topic, opponentArgument string) string {
	return fmt.Sprintf(
		"Persona: %s\nTopic: %s\nOpponent's argument: %s\nProduce one concise %s-style argumentative sentence.",
		role, topic, opponentArgument, strings.ToLower(role.String()))
}
