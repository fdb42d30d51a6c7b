// Package walksat implements WalkSAT (spec §4.4): randomized local search
// with a break-count heuristic and a noise parameter, run directly on the
// graph's residual (enabled) structure. SID falls back to WalkSAT once
// surveys have collapsed to all-zero (spec §4.5 step 2).
package walksat

import (
	"github.com/crillab/sidsat/config"
	"github.com/crillab/sidsat/graph"
	"github.com/crillab/sidsat/rng"
)

// Run attempts to satisfy g with up to cfg.WSMaxTries restarts of up to
// cfg.WSMaxFlips (or its resolved default) flips each. It returns true if
// a satisfying assignment was found, in which case it is left on g;
// otherwise g's assignment reflects the last exhausted try.
func Run(g *graph.Graph, cfg *config.Config) bool {
	maxFlips := cfg.ResolveWSMaxFlips(g.NbVars())
	for try := 0; try < cfg.WSMaxTries; try++ {
		randomizeUnassigned(g)
		if search(g, cfg, maxFlips) {
			return true
		}
	}
	return false
}

// randomizeUnassigned assigns every currently unassigned variable a
// uniformly random boolean (spec §4.4 step 1). Variables decimation
// already assigned are left untouched on this first randomization; later
// flips may still touch them once a clause containing them is selected
// (spec §9 open question).
func randomizeUnassigned(g *graph.Graph) {
	for _, vid := range g.GetUnassignedVariables() {
		g.AssignValue(vid, rng.Bool())
	}
}

// search runs up to maxFlips flips of the break-count heuristic, returning
// true as soon as g.IsSAT().
func search(g *graph.Graph, cfg *config.Config, maxFlips int) bool {
	for flip := 0; flip < maxFlips; flip++ {
		if g.IsSAT() {
			return true
		}
		unsat := unsatisfiedClauses(g)
		if len(unsat) == 0 {
			// Every enabled clause is satisfied, yet graph.IsSAT() above
			// was false: some disabled clause was left unsatisfied by an
			// earlier flip of a decimated variable (spec §9 open
			// question). Nothing in the enabled residual graph can fix
			// that, so this try is exhausted.
			return false
		}
		c := unsat[rng.Intn(len(unsat))]

		v, minBreak := pickVariable(g, c)
		switch {
		case minBreak == 0:
			flip1(g, v)
		case rng.Float64() < cfg.WSNoise:
			candidates := g.ClauseEnabledEdges(c)
			eid := candidates[rng.Intn(len(candidates))]
			flip1(g, g.Edge(eid).Var)
		default:
			flip1(g, v)
		}
	}
	return g.IsSAT()
}

// unsatisfiedClauses partitions the enabled clauses into satisfied and
// unsatisfied, returning only the latter (spec §4.4 step b).
func unsatisfiedClauses(g *graph.Graph) []graph.ClauseID {
	var res []graph.ClauseID
	for _, cid := range g.GetEnabledClauses() {
		if !g.ClauseIsSAT(cid) {
			res = append(res, cid)
		}
	}
	return res
}

// pickVariable scans c's enabled-edge variables for the minimum break
// count, early-exiting as soon as a break-count-0 variable is found (spec
// §4.4 step d). On ties, the first variable reached in scan order wins.
func pickVariable(g *graph.Graph, c graph.ClauseID) (graph.VarID, int) {
	edges := g.ClauseEnabledEdges(c)
	best := graph.VarID(-1)
	bestBreak := -1
	for _, eid := range edges {
		v := g.Edge(eid).Var
		bc := breakCount(g, v)
		if bestBreak == -1 || bc < bestBreak {
			best, bestBreak = v, bc
			if bc == 0 {
				break
			}
		}
	}
	return best, bestBreak
}

// breakCount returns the number of currently-satisfied enabled clauses
// that would become unsatisfied if v were flipped: v is flipped, its
// incident enabled clauses are recounted, and v is flipped back, leaving
// the graph bit-identical to before (spec §4.4 "Correctness of break-count
// computation", §8 invariant 5). Clauses are gated on the clause's own
// Enabled flag only, not the connecting edge's: a decimated variable's
// edge to a clause it didn't satisfy is left permanently disabled while
// the clause itself stays enabled (sid.decimate), and a later WalkSAT flip
// can satisfy that clause through that very edge (spec §9's resolved open
// question lets WalkSAT flip decimated variables).
func breakCount(g *graph.Graph, v graph.VarID) int {
	variable := g.Variable(v)
	before := variable.Value

	incident := variable.Edges()
	satBefore := make([]bool, len(incident))
	for i, eid := range incident {
		e := g.Edge(eid)
		satBefore[i] = g.Clause(e.Clause).Enabled && g.ClauseIsSAT(e.Clause)
	}

	flip1(g, v)

	count := 0
	for i, eid := range incident {
		if !satBefore[i] {
			continue
		}
		e := g.Edge(eid)
		if !g.ClauseIsSAT(e.Clause) {
			count++
		}
	}

	g.AssignValue(v, before)
	return count
}

func flip1(g *graph.Graph, v graph.VarID) {
	variable := g.Variable(v)
	g.AssignValue(v, !variable.Value)
}
