package debate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Orchestrator alternates the two persona agents for a fixed number of
// rounds, mirroring every turn into a recorder. It drives one agent call at
// a time; the whole run is synchronous.
type Orchestrator struct {
	scientist   *Agent
	philosopher *Agent
	recorder    TurnRecorder
	logger      *zap.Logger
}

// NewOrchestrator creates an orchestrator over the two persona agents.
func NewOrchestrator(scientist, philosopher *Agent, recorder TurnRecorder, logger *zap.Logger) (*Orchestrator, error) {
	if scientist == nil || philosopher == nil {
		return nil, fmt.Errorf("both agents are required")
	}
	if scientist.Role() != SpeakerScientist {
		return nil, fmt.Errorf("%w: scientist agent has role %q", ErrInvalidSpeaker, scientist.Role())
	}
	if philosopher.Role() != SpeakerPhilosopher {
		return nil, fmt.Errorf("%w: philosopher agent has role %q", ErrInvalidSpeaker, philosopher.Role())
	}
	if recorder == nil {
		return nil, fmt.Errorf("turn recorder cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Orchestrator{
		scientist:   scientist,
		philosopher: philosopher,
		recorder:    recorder,
		logger:      logger,
	}, nil
}

// Run executes a debate on topic for the given number of rounds. Each round
// the Scientist speaks first, then the Philosopher, so the final transcript
// holds 2*rounds turns. The completed state is returned.
//
// Run stops early only when ctx is cancelled; generation failures never
// surface here because the producer degrades to fallback sentences.
func (o *Orchestrator) Run(ctx context.Context, topic string, rounds int) (*State, error) {
	if rounds <= 0 {
		return nil, ErrInvalidRounds
	}

	runID := uuid.NewString()
	log := o.logger.With(
		zap.String("run_id", runID),
		zap.String("topic", topic))
	log.Info("debate starting", zap.Int("rounds", rounds))

	state := NewState(topic)
	for round := 1; round <= rounds; round++ {
		for _, agent := range []*Agent{o.scientist, o.philosopher} {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("debate cancelled in round %d: %w", round, err)
			}

			turn := agent.Act(ctx, state)
			o.recorder.Record(turn)
			log.Info("turn recorded",
				zap.Int("turn", turn.Round),
				zap.String("speaker", turn.Speaker.String()))
		}
	}

	log.Info("debate finished", zap.Int("turns", state.Len()))
	return state, nil
}
