package generation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Producer turns raw generator output into one well-formed sentence,
// applying the retry and fallback policy of Produce and emitting a
// diagnostic log line plus metrics for every failed attempt.
//
// The decision logic lives in the pure Produce function; Producer only adds
// the I/O.
type Producer struct {
	gen     Generator
	logger  *zap.Logger
	metrics *Metrics
}

// NewProducer creates a producer over gen.
func NewProducer(gen Generator, logger *zap.Logger, metrics *Metrics) (*Producer, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if metrics == nil {
		return nil, fmt.Errorf("metrics cannot be nil")
	}

	return &Producer{
		gen:     gen,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Produce returns one sentence for prompt. It never fails and never
// returns an empty string: exhausted retries degrade to the deterministic
// fallback sentence.
func (p *Producer) Produce(ctx context.Context, prompt string, maxTokens int) string {
	res := Produce(ctx, p.gen, prompt, maxTokens)

	for _, attempt := range res.Attempts {
		p.metrics.Attempts.Inc()
		if attempt.Err != nil {
			p.metrics.Failures.Inc()
			p.logger.Warn("generation attempt failed",
				zap.Int("attempt", attempt.Number),
				zap.Error(attempt.Err))
		}
	}

	if res.Fallback {
		p.metrics.Fallbacks.Inc()
		p.logger.Warn("retry budget exhausted, using fallback sentence",
			zap.String("sentence", res.Sentence))
	}

	return res.Sentence
}
