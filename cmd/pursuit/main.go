// Command pursuit solves pursuit-evasion games on undirected graphs
// and generates reproducible test graphs in the edge-list format.
//
// Usage:
//
//	pursuit solve [file]      read a graph, print the safe-vertex count
//	pursuit generate [flags]  emit a cycle+path+random fixture graph
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Safe-vertex solver for graph pursuit-evasion games",
	Long: `pursuit decides, for an undirected graph on which an evader and a
pursuer alternate single-step moves (staying in place is allowed), which
starting vertices let the evader escape forever under perfect play.`,
	SilenceUsage: true,
}

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
