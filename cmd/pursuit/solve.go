package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphistan/pursuit/attractor"
	"github.com/graphistan/pursuit/graphio"
)

var (
	verbose bool
	fifo    bool

	solveCmd = &cobra.Command{
		Use:   "solve [file]",
		Short: "Read an edge-list graph and print the number of safe vertices",
		Long: `Reads a graph in the "n m" / "u v" edge-list format from the given
file (or stdin) and prints the count of safe evader starts to stdout.
With --verbose the actual safe vertices are logged to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
)

func init() {
	solveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log the safe vertex list to stderr")
	solveCmd.Flags().BoolVar(&fifo, "fifo", false,
		"process the worklist as a queue instead of a stack (same result)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		defer f.Close()
		in = f
	}

	g, err := graphio.ReadGraph(in)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	order := attractor.LIFO
	if fifo {
		order = attractor.FIFO
	}
	res, err := attractor.Solve(g, attractor.WithQueueOrder(order))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	safe := res.SafeVertices()
	if verbose {
		slog.Info("solved", "vertices", g.Order(), "safe", safe, "count", len(safe))
	}

	return graphio.WriteSolution(os.Stdout, safe)
}
