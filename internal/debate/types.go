package debate

import (
	"errors"
	"time"
)

// Common errors for debate operations.
var (
	ErrInvalidSpeaker = errors.New("speaker must be Scientist or Philosopher")
	ErrInvalidRounds  = errors.New("rounds must be positive")
)

// Speaker identifies one of the two debate personas.
//
// The set is closed: scoring maps and transcripts are keyed by Speaker, so
// free-form strings are rejected at construction time rather than silently
// creating a third participant.
type Speaker string

const (
	// SpeakerScientist argues from evidence and measurement.
	SpeakerScientist Speaker = "Scientist"

	// SpeakerPhilosopher argues from concepts and first principles.
	SpeakerPhilosopher Speaker = "Philosopher"
)

// Valid reports whether s is one of the two known personas.
func (s Speaker) Valid() bool {
	return s == SpeakerScientist || s == SpeakerPhilosopher
}

// Opponent returns the other persona.
func (s Speaker) Opponent() Speaker {
	if s == SpeakerScientist {
		return SpeakerPhilosopher
	}
	return SpeakerScientist
}

func (s Speaker) String() string {
	return string(s)
}

// Speakers returns both personas in speaking order (Scientist first).
func Speakers() []Speaker {
	return []Speaker{SpeakerScientist, SpeakerPhilosopher}
}

// Turn is one atomic contribution to the debate. Immutable once created.
type Turn struct {
	// Round is the 1-based position of the turn in the transcript.
	Round int `json:"round"`

	// Speaker is the persona that produced the argument.
	Speaker Speaker `json:"speaker"`

	// Argument is the produced sentence. Never empty.
	Argument string `json:"argument"`

	// Timestamp records when the turn was appended.
	Timestamp time.Time `json:"timestamp"`
}

// TurnRecorder receives every turn as it is appended to the debate.
// The memory store implements this to mirror the transcript.
type TurnRecorder interface {
	Record(Turn)
}
