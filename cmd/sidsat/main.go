// Command sidsat is the experiment-runner CLI: a thin flag/arg-parsing
// layer calling straight into the library, the way gophersat's own
// main.go does, built on cobra, the CLI stack the rest of the
// retrieval pack uses for multi-command tools.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sidsat",
		Short: "A Survey Inspired Decimation solver for random 3-SAT instances",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "sets verbose mode on")
	cmd.AddCommand(newSolveCmd())
	cmd.AddCommand(newRunCmd())
	return cmd
}
