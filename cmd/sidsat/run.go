package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/crillab/sidsat/config"
	"github.com/crillab/sidsat/dimacs"
	"github.com/crillab/sidsat/instancegen"
	"github.com/crillab/sidsat/sid"
	"github.com/crillab/sidsat/stats"
)

const instancesDir = "experiments/instances"

// newRunCmd implements the experiment harness invocation named in spec §6:
// "solver <N> <alpha> [random|community]", exit 0 on completion, nonzero
// on argument or file errors. Instances are generated on demand under
// experiments/instances/ using the naming convention spec §6 names, then
// solved and aggregated into a Summary.
func newRunCmd() *cobra.Command {
	var fraction float64

	cmd := &cobra.Command{
		Use:   "run <N> <alpha> [random|community]",
		Short: "Run a sweep of generated 3-SAT instances through SID",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid N %q: must be a positive integer", args[0])
			}
			alpha, err := strconv.ParseFloat(args[1], 64)
			if err != nil || alpha <= 0 {
				return fmt.Errorf("invalid alpha %q: must be a positive real", args[1])
			}
			generator := "random"
			if len(args) == 3 {
				generator = args[2]
			}
			if generator != "random" && generator != "community" {
				return fmt.Errorf("invalid generator %q: must be \"random\" or \"community\"", generator)
			}

			cfg := config.Default()
			var runs []stats.Run
			for i := 0; i < cfg.CNFInstances; i++ {
				path := instancePath(generator, n, alpha, i)
				if err := ensureInstance(path, generator, n, alpha); err != nil {
					return err
				}

				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("could not open %q: %w", path, err)
				}
				g, err := dimacs.Parse(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("could not parse %q: %w", path, err)
				}

				res := sid.Run(g, fraction, cfg)
				run := stats.NewRun(path, g.NbVars(), g.NbClauses(), res)
				stats.LogVerbose(run)
				runs = append(runs, run)
			}

			stats.NewSummary(runs).Log()
			return nil
		},
	}
	cmd.Flags().Float64Var(&fraction, "fraction", 0.1, "fraction of unassigned variables decimated per SID round")
	return cmd
}

func instancePath(generator string, n int, alpha float64, i int) string {
	return filepath.Join(instancesDir, fmt.Sprintf("%s_3SAT_%dN_%gR_%d.cnf", generator, n, alpha, i))
}

// ensureInstance generates and writes the instance file at path if it does
// not already exist, so that a `run` invocation is reproducible across
// calls for the same (generator, N, alpha, i) once the first run has
// populated experiments/instances/.
func ensureInstance(path, generator string, n int, alpha float64) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create %q: %w", filepath.Dir(path), err)
	}

	var inst instancegen.Instance
	if generator == "community" {
		inst = instancegen.Community(n, alpha, n/10+1)
	} else {
		inst = instancegen.Random(n, alpha)
	}

	var buf bytes.Buffer
	buf.WriteString(inst.CNF())
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}
