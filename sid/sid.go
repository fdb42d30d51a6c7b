// Package sid implements the Survey Inspired Decimation driver (spec
// §4.5): loop SP, decimate the top-bias fraction of unassigned variables,
// simplify and run UP, and test satisfaction; fall back to WalkSAT once
// surveys collapse to all zero.
package sid

import (
	"sort"
	"time"

	"github.com/crillab/sidsat/config"
	"github.com/crillab/sidsat/graph"
	"github.com/crillab/sidsat/sp"
	"github.com/crillab/sidsat/up"
	"github.com/crillab/sidsat/walksat"
)

// Result is SID's return value (spec §4.5).
type Result struct {
	SAT               bool
	TotalSPIterations uint
	StartTime         time.Time
	EndTime           time.Time
}

// Run drives g to a satisfying assignment or failure, decimating the
// given fraction (0,1] of remaining unassigned variables per round.
func Run(g *graph.Graph, fraction float64, cfg *config.Config) Result {
	start := time.Now()
	res := Result{StartTime: start}

	for {
		spResult := sp.Run(g, cfg)
		res.TotalSPIterations += spResult.Iterations
		if !spResult.Converged {
			res.EndTime = time.Now()
			return res
		}

		if surveysAllZero(g) {
			res.SAT = walksat.Run(g, cfg)
			res.EndTime = time.Now()
			return res
		}

		decimate(g, fraction)

		if ok := up.Run(g); !ok {
			res.EndTime = time.Now()
			return res
		}
		if g.IsSAT() {
			res.SAT = true
			res.EndTime = time.Now()
			return res
		}
	}
}

// surveysAllZero reports whether every enabled edge's survey is exactly 0
// (spec §4.5 step 2).
func surveysAllZero(g *graph.Graph) bool {
	for _, eid := range g.GetEnabledEdges() {
		if g.Edge(eid).Survey != 0 {
			return false
		}
	}
	return true
}

// decimate computes every unassigned variable's bias, ranks them by
// |eval_value| descending (ties broken by ascending variable id for
// reproducibility, spec §4.5 "tie-breaking"), fixes the top
// max(1, floor(|unassigned|*fraction)) of them to their preferred value,
// and immediately disables the clauses/edges that assignment settles.
func decimate(g *graph.Graph, fraction float64) {
	unassigned := g.GetUnassignedVariables()
	for _, vid := range unassigned {
		g.Variable(vid).EvalValue = sp.EvalValue(g, vid)
	}

	sort.SliceStable(unassigned, func(i, j int) bool {
		bi := abs64(g.Variable(unassigned[i]).EvalValue)
		bj := abs64(g.Variable(unassigned[j]).EvalValue)
		if bi != bj {
			return bi > bj
		}
		return unassigned[i] < unassigned[j]
	})

	n := len(unassigned)
	k := int(float64(n) * fraction)
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	for _, vid := range unassigned[:k] {
		v := g.Variable(vid)
		value := v.EvalValue > 0
		g.AssignValue(vid, value)
		for _, eid := range g.VariableEnabledEdges(vid) {
			e := g.Edge(eid)
			if e.Type == value {
				g.DisableClause(e.Clause)
			} else {
				g.DisableEdge(eid)
			}
		}
	}
}

func abs64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
