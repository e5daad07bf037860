// Package judge scores a completed debate transcript and declares a
// winner.
//
// Scoring is heuristic, not semantic: a single left-to-right pass rewards
// vocabulary novelty and argument length and penalizes exact repeats. The
// pass is order-dependent — novelty is always measured against turns
// processed strictly earlier, so reordering the transcript changes the
// result. The repeat penalty, in contrast, matches against every other
// turn in the transcript regardless of position.
package judge

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/debated/internal/debate"
)

// Winner identifies the verdict outcome.
type Winner string

const (
	WinnerScientist   = Winner(debate.SpeakerScientist)
	WinnerPhilosopher = Winner(debate.SpeakerPhilosopher)

	// WinnerTie is declared on exact score equality.
	WinnerTie Winner = "Tie"

	// WinnerNoDebate is the sentinel outcome for an empty transcript.
	WinnerNoDebate Winner = "NoDebate"
)

// Scoring constants.
const (
	repeatPenalty  = 5.0
	minLengthScore = 1.0
	maxLengthScore = 10.0
	wordsPerPoint  = 5.0
)

// ScoreRecord is the score assigned to a single turn. Derived data,
// recomputed fresh on every judging pass.
type ScoreRecord struct {
	Round   int            `json:"round"`
	Speaker debate.Speaker `json:"speaker"`
	Score   float64        `json:"score"`
}

// Verdict is the judge's decision over a full transcript. Never mutated
// after construction.
type Verdict struct {
	Topic         string                     `json:"topic"`
	Scores        map[debate.Speaker]float64 `json:"scores,omitempty"`
	PerRound      []ScoreRecord              `json:"per_round_scores,omitempty"`
	Winner        Winner                     `json:"winner"`
	Justification string                     `json:"justification"`
	Summary       string                     `json:"summary"`
}

// Run scores every turn of the transcript in order and declares a winner.
//
// Run is a pure function of its inputs: it performs no writes, so repeated
// or concurrent invocations over a stable transcript yield identical
// verdicts. An empty transcript short-circuits to a NoDebate verdict with
// no scoring performed.
func Run(turns []debate.Turn, topic string) Verdict {
	if len(turns) == 0 {
		return Verdict{
			Topic:         topic,
			Winner:        WinnerNoDebate,
			Justification: "No arguments were made.",
			Summary:       "",
		}
	}

	scores := make(map[debate.Speaker]float64, 2)
	for _, speaker := range debate.Speakers() {
		scores[speaker] = 0
	}
	perRound := make([]ScoreRecord, 0, len(turns))
	seen := make(map[string]struct{})

	for i, turn := range turns {
		tokens := tokenize(turn.Argument)

		novelty := 0
		for tok := range tokens {
			if _, ok := seen[tok]; !ok {
				novelty++
			}
		}

		words := len(strings.Fields(turn.Argument))
		lengthScore := clamp(float64(words)/wordsPerPoint, minLengthScore, maxLengthScore)

		score := float64(novelty) + lengthScore
		if repeated(turns, i) {
			score -= repeatPenalty
		}

		perRound = append(perRound, ScoreRecord{
			Round:   turn.Round,
			Speaker: turn.Speaker,
			Score:   score,
		})
		scores[turn.Speaker] += score

		for tok := range tokens {
			seen[tok] = struct{}{}
		}
	}

	winner, justification := decide(scores)

	return Verdict{
		Topic:         topic,
		Scores:        scores,
		PerRound:      perRound,
		Winner:        winner,
		Justification: justification,
		Summary:       renderSummary(turns),
	}
}

// decide compares cumulative scores: strictly greater wins, exact equality
// is a tie. The justification reports both scores to two decimal places.
func decide(scores map[debate.Speaker]float64) (Winner, string) {
	sci := scores[debate.SpeakerScientist]
	phi := scores[debate.SpeakerPhilosopher]

	switch {
	case sci > phi:
		return WinnerScientist, fmt.Sprintf(
			"Scientist scored %.2f vs Philosopher %.2f (higher novelty/content).", sci, phi)
	case phi > sci:
		return WinnerPhilosopher, fmt.Sprintf(
			"Philosopher scored %.2f vs Scientist %.2f (higher novelty/content).", phi, sci)
	default:
		return WinnerTie, fmt.Sprintf(
			"Scores tied (Scientist %.2f, Philosopher %.2f). Declaring a tie.", sci, phi)
	}
}

// repeated reports whether any other turn in the transcript, at any
// position, carries byte-identical argument text.
func repeated(turns []debate.Turn, i int) bool {
	for j, other := range turns {
		if j != i && other.Argument == turns[i].Argument {
			return true
		}
	}
	return false
}

// renderSummary formats the transcript one line per turn, in order.
func renderSummary(turns []debate.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines = append(lines, fmt.Sprintf("Round %d [%s]: %s", turn.Round, turn.Speaker, turn.Argument))
	}
	return strings.Join(lines, "\n")
}

// tokenize returns the case-insensitive whitespace-split word set of text.
func tokenize(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
