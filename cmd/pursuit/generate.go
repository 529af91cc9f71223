package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphistan/pursuit/fixture"
	"github.com/graphistan/pursuit/graphio"
)

// Defaults match the classical evaluation fixture: 999 vertices,
// degree bound 10.
var (
	genSize   int
	genDegree int
	genSeed   int64

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Emit a reproducible test graph in edge-list format",
		Long: `Generates the disjoint union of a cycle (all safe), a path (none
safe) and a bounded-degree random graph, each on --size vertices with
shuffled labels, and writes it to stdout in the format "solve" reads.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
)

func init() {
	generateCmd.Flags().IntVarP(&genSize, "size", "m", 333,
		"vertices per component (total is 3·size)")
	generateCmd.Flags().IntVarP(&genDegree, "degree", "d", 10,
		"degree bound of the random component")
	generateCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0,
		"random seed (same seed, same graph)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g, err := fixture.Mixed(genSize, genDegree, genSeed)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return graphio.WriteGraph(os.Stdout, g)
}
