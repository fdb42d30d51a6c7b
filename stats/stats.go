// Package stats prints run statistics: the verbose per-instance output
// gophersat's main.go prints inline (nb of clauses/vars, nb conflicts/
// restarts/decisions), generalized here to SID's own counters (SP
// iterations, wall time, SAT/UNSAT tallies) and a final summary across a
// sweep of CNF_INSTANCES instances (spec §1 "statistics printing", an
// external collaborator to the core).
package stats

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/crillab/sidsat/sid"
)

// Run holds one instance's outcome, enough to log it and to fold it into
// a Summary.
type Run struct {
	Path          string
	NbVars        int
	NbClauses     int
	Result        sid.Result
	ElapsedMillis int64
}

// NewRun captures a Result into a Run record.
func NewRun(path string, nbVars, nbClauses int, res sid.Result) Run {
	return Run{
		Path:          path,
		NbVars:        nbVars,
		NbClauses:     nbClauses,
		Result:        res,
		ElapsedMillis: res.EndTime.Sub(res.StartTime).Milliseconds(),
	}
}

// LogVerbose logs one instance's header and outcome at Info level, in the
// spirit of gophersat main.go's "-verbose" block.
func LogVerbose(r Run) {
	log.WithFields(log.Fields{
		"path":      r.Path,
		"nbVars":    r.NbVars,
		"nbClauses": r.NbClauses,
	}).Info("solving")
	if r.Result.SAT {
		log.WithFields(log.Fields{
			"spIterations": r.Result.TotalSPIterations,
			"elapsedMs":    r.ElapsedMillis,
		}).Info("SATISFIABLE")
	} else {
		log.WithFields(log.Fields{
			"spIterations": r.Result.TotalSPIterations,
			"elapsedMs":    r.ElapsedMillis,
		}).Info("UNKNOWN (no satisfying assignment found)")
	}
}

// Summary aggregates a sweep of Runs (one per generated instance) for the
// experiment harness (spec §6, CNF_INSTANCES).
type Summary struct {
	NbInstances       int
	NbSAT             int
	TotalSPIterations uint
	TotalElapsed      time.Duration
}

// NewSummary folds a slice of Runs into a Summary.
func NewSummary(runs []Run) Summary {
	var s Summary
	s.NbInstances = len(runs)
	for _, r := range runs {
		if r.Result.SAT {
			s.NbSAT++
		}
		s.TotalSPIterations += r.Result.TotalSPIterations
		s.TotalElapsed += r.Result.EndTime.Sub(r.Result.StartTime)
	}
	return s
}

// Log prints the summary at Info level.
func (s Summary) Log() {
	log.WithFields(log.Fields{
		"instances":         s.NbInstances,
		"sat":               s.NbSAT,
		"totalSPIterations": s.TotalSPIterations,
		"totalElapsed":      s.TotalElapsed,
	}).Info("sweep complete")
}
