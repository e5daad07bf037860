// Package graphexport renders a debate transcript as a Graphviz DOT file:
// a linear DAG from an initial topic node through one node per turn.
package graphexport

import (
	"fmt"
	"os"
	"strings"

	"github.com/fyrsmithlabs/debated/internal/debate"
)

// Export writes the DOT description of the transcript to path and returns
// the path written. Each turn becomes a node labeled "R{round}\n{speaker}"
// chained from its predecessor; the chain starts at a "topic" node.
func Export(turns []debate.Turn, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("output path cannot be empty")
	}

	lines := []string{
		"digraph Debate {",
		"  rankdir=LR;",
		`  topic [label="User: Topic"];`,
	}

	prev := "topic"
	for _, turn := range turns {
		id := fmt.Sprintf("r%d_%s", turn.Round, turn.Speaker)
		lines = append(lines,
			fmt.Sprintf(`  "%s" [label="R%d\n%s"];`, id, turn.Round, turn.Speaker),
			fmt.Sprintf(`  "%s" -> "%s";`, prev, id))
		prev = id
	}
	lines = append(lines, "}")

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("failed to write graph file: %w", err)
	}
	return path, nil
}
