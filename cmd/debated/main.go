// Package main implements the debated CLI, which runs a scored two-persona
// debate on a fixed topic and prints the judge's verdict.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version information
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "debated",
	Short: "Turn-based two-persona debates with a scored verdict",
	Long: `debated runs a turn-based textual debate between two generated personas
(a Scientist and a Philosopher) on a fixed topic, records the transcript,
and produces a scored verdict.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
