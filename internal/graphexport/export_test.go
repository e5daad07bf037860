package graphexport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/debated/internal/debate"
)

func TestExport(t *testing.T) {
	t.Parallel()

	turns := []debate.Turn{
		{Round: 1, Speaker: debate.SpeakerScientist, Argument: "a.", Timestamp: time.Now()},
		{Round: 2, Speaker: debate.SpeakerPhilosopher, Argument: "b.", Timestamp: time.Now()},
	}

	path := filepath.Join(t.TempDir(), "debate.dot")
	got, err := Export(turns, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	dot := string(content)

	assert.Contains(t, dot, "digraph Debate {")
	assert.Contains(t, dot, "rankdir=LR;")
	assert.Contains(t, dot, `topic [label="User: Topic"];`)
	assert.Contains(t, dot, `"r1_Scientist" [label="R1\nScientist"];`)
	assert.Contains(t, dot, `"r2_Philosopher" [label="R2\nPhilosopher"];`)
	assert.Contains(t, dot, `"topic" -> "r1_Scientist";`)
	assert.Contains(t, dot, `"r1_Scientist" -> "r2_Philosopher";`)
}

func TestExportEmptyTranscript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.dot")
	_, err := Export(nil, path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `topic [label="User: Topic"];`)
}

func TestExportEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := Export(nil, "")
	assert.Error(t, err)
}
