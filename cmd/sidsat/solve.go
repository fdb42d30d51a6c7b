package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crillab/sidsat/config"
	"github.com/crillab/sidsat/dimacs"
	"github.com/crillab/sidsat/sid"
	"github.com/crillab/sidsat/stats"
)

// newSolveCmd mirrors gophersat main.go's single-file invocation: parse a
// DIMACS file, run SID on it, print the outcome.
func newSolveCmd() *cobra.Command {
	var fraction float64

	cmd := &cobra.Command{
		Use:   "solve <file.cnf>",
		Short: "Solve a single DIMACS CNF file with Survey Inspired Decimation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("could not open %q: %w", path, err)
			}
			defer f.Close()

			g, err := dimacs.Parse(f)
			if err != nil {
				return fmt.Errorf("could not parse DIMACS file %q: %w", path, err)
			}

			cfg := config.Default()
			cfg.Fraction = fraction
			res := sid.Run(g, cfg.Fraction, cfg)
			stats.LogVerbose(stats.NewRun(path, g.NbVars(), g.NbClauses(), res))

			if res.SAT {
				fmt.Println("SATISFIABLE")
			} else {
				fmt.Println("UNKNOWN")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&fraction, "fraction", 0.1, "fraction of unassigned variables decimated per SID round")
	return cmd
}
