// Package memory holds the durable-for-the-run transcript of a debate and
// offers per-speaker summaries. The store is append-only: entries are never
// edited or removed once recorded.
package memory

import (
	"strings"

	"github.com/fyrsmithlabs/debated/internal/debate"
)

const (
	// DefaultSummaryLimit bounds summary length when callers have no
	// particular budget.
	DefaultSummaryLimit = 400

	// summaryTurns is how many of the speaker's most recent arguments a
	// summary includes.
	summaryTurns = 3

	summarySeparator = " | "
	ellipsis         = "..."
)

// Store is the ordered transcript of a single debate run.
//
// It is owned by the goroutine driving the debate; reads after the run
// completes (judging, summaries, graph export) are safe from anywhere
// because the store is no longer mutated.
type Store struct {
	turns []debate.Turn
}

// NewStore creates an empty transcript store.
func NewStore() *Store {
	return &Store{turns: make([]debate.Turn, 0, 16)}
}

// Record appends a turn unconditionally. Implements debate.TurnRecorder.
func (s *Store) Record(turn debate.Turn) {
	s.turns = append(s.turns, turn)
}

// Turns returns the transcript in insertion order.
func (s *Store) Turns() []debate.Turn {
	out := make([]debate.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of recorded turns.
func (s *Store) Len() int {
	return len(s.turns)
}

// SummaryFor joins the speaker's most recent arguments (up to three, in
// transcript order) with " | ". When the joined text exceeds maxLen it is
// hard-truncated and an ellipsis marker appended, so the result never
// exceeds maxLen. Read-only; safe to call repeatedly with different
// budgets.
func (s *Store) SummaryFor(speaker debate.Speaker, maxLen int) string {
	var parts []string
	for _, turn := range s.turns {
		if turn.Speaker == speaker {
			parts = append(parts, turn.Argument)
		}
	}
	if len(parts) > summaryTurns {
		parts = parts[len(parts)-summaryTurns:]
	}

	summary := strings.Join(parts, summarySeparator)
	if len(summary) > maxLen {
		if maxLen <= len(ellipsis) {
			return summary[:maxLen]
		}
		summary = summary[:maxLen-len(ellipsis)] + ellipsis
	}
	return summary
}
