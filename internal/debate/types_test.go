package debate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeakerValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SpeakerScientist.Valid())
	assert.True(t, SpeakerPhilosopher.Valid())
	assert.False(t, Speaker("Moderator").Valid())
	assert.False(t, Speaker("").Valid())
	assert.False(t, Speaker("scientist").Valid(), "speaker identifiers are case-sensitive")
}

func TestSpeakerOpponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SpeakerPhilosopher, SpeakerScientist.Opponent())
	assert.Equal(t, SpeakerScientist, SpeakerPhilosopher.Opponent())
}

func TestSpeakers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Speaker{SpeakerScientist, SpeakerPhilosopher}, Speakers(),
		"Scientist speaks first")
}
