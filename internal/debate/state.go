package debate

import "time"

// State is the mutable record of one debate run: the fixed topic, the most
// recent argument per speaker, and the ordered transcript.
//
// Invariant: the last-argument entry for a speaker always equals the
// argument of the most recent transcript turn by that speaker, or is absent
// when the speaker has not spoken yet. Append is the only mutator, so the
// invariant holds by construction.
type State struct {
	topic      string
	last       map[Speaker]string
	transcript []Turn
}

// NewState creates the state for a fresh debate on topic.
func NewState(topic string) *State {
	return &State{
		topic: topic,
		last:  make(map[Speaker]string, 2),
	}
}

// Topic returns the debate topic. Immutable for the lifetime of the state.
func (s *State) Topic() string {
	return s.topic
}

// LastArgument returns the most recent argument by speaker, or ok=false
// when the speaker has not argued yet.
func (s *State) LastArgument(speaker Speaker) (string, bool) {
	arg, ok := s.last[speaker]
	return arg, ok
}

// Append records a new argument for speaker, assigning the next round
// number and the current time. The created turn is returned.
func (s *State) Append(speaker Speaker, argument string) Turn {
	turn := Turn{
		Round:     len(s.transcript) + 1,
		Speaker:   speaker,
		Argument:  argument,
		Timestamp: time.Now(),
	}
	s.transcript = append(s.transcript, turn)
	s.last[speaker] = argument
	return turn
}

// Transcript returns a copy of the ordered transcript.
func (s *State) Transcript() []Turn {
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len returns the number of turns taken so far.
func (s *State) Len() int {
	return len(s.transcript)
}
