// Package sp implements Survey Propagation (spec §4.3): a fixed-point
// iteration of warning messages ("surveys") over the enabled edges of a
// factor graph. SP is the numerically delicate half of the solver — every
// update risks a 0/0 division when all relevant messages are already 1,
// which is recovered locally by treating the affected survey as trivial
// (the "NaN shortcut").
package sp

import (
	"math"

	"github.com/crillab/sidsat/config"
	"github.com/crillab/sidsat/graph"
	"github.com/crillab/sidsat/rng"
)

// Result is SP's return value: whether the fixed point was reached, and
// how many sweeps it took.
type Result struct {
	Converged  bool
	Iterations uint
}

// Run initializes every enabled edge's survey uniformly in [0,1) and
// iterates the update rule until every edge converges (per-edge delta
// below cfg.SPEpsilon) or cfg.SPMaxIterations sweeps have elapsed.
func Run(g *graph.Graph, cfg *config.Config) Result {
	edges := g.GetEnabledEdges()
	for _, eid := range edges {
		g.Edge(eid).Survey = rng.Float64()
	}

	var iterations uint
	for iterations = 0; iterations < uint(cfg.SPMaxIterations); iterations++ {
		order := rng.Perm(len(edges))
		allConverged := true
		// Updates are applied in place, in permuted order, so that later
		// edges in the same sweep see earlier edges' freshly computed
		// surveys (asynchronous update, spec §4.3 step 1-2: "randomly
		// permute... for each edge in permuted order compute...").
		for _, idx := range order {
			eid := edges[idx]
			e := g.Edge(eid)
			newSurvey := updateEdge(g, eid)
			if math.Abs(newSurvey-e.Survey) >= cfg.SPEpsilon {
				allConverged = false
			}
			e.Survey = newSurvey
		}
		if allConverged {
			return Result{Converged: true, Iterations: iterations + 1}
		}
	}
	return Result{Converged: false, Iterations: uint(cfg.SPMaxIterations)}
}

// updateEdge computes the new survey for edge a->i (spec §4.3 step 2): for
// every other edge a->j of the same clause, partition j's other incident
// enabled edges by type relative to a->j, fold them into a cavity factor
// r, and multiply a running product across all of a's clause's other
// edges. If any cavity factor hits the 0/0 case, the whole survey is 0 and
// the remaining edges of the clause are skipped (spec §4.3's "NaN
// shortcut").
func updateEdge(g *graph.Graph, aToI graph.EdgeID) float64 {
	eAI := g.Edge(aToI)
	running := 1.0
	for _, eid := range g.ClauseEnabledEdges(eAI.Clause) {
		if eid == aToI {
			continue
		}
		r, degenerate := cavityFactor(g, eid)
		if degenerate {
			return 0
		}
		running *= r
	}
	return running
}

// cavityFactor computes r for edge a->j (eAJ): j's other incident enabled
// edges, excluding a->j's own clause (i.e. eAJ itself, since eAJ is the
// edge connecting j to clause a), partitioned by type relative to a->j.
func cavityFactor(g *graph.Graph, eAJ graph.EdgeID) (r float64, degenerate bool) {
	edgeAJ := g.Edge(eAJ)
	j := edgeAJ.Var

	pu, ps, p0 := 1.0, 1.0, 1.0
	for _, eid := range g.VariableEnabledEdges(j) {
		if eid == eAJ {
			continue
		}
		b := g.Edge(eid)
		factor := 1 - b.Survey
		p0 *= factor
		if b.Type != edgeAJ.Type {
			pu *= factor
		} else {
			ps *= factor
		}
	}

	piU := (1 - pu) * ps
	piS := (1 - ps) * pu
	piO := p0

	denom := piU + piS + piO
	if denom == 0 {
		return 0, true
	}
	return piU / denom, false
}
