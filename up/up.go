// Package up implements Unit Propagation (spec §4.2): repeatedly force the
// variable of any clause reduced to a single enabled edge, then sweep
// every enabled clause, disabling satisfied clauses and falsifying edges,
// until no unit clauses remain or a contradiction is found.
package up

import "github.com/crillab/sidsat/graph"

// Run propagates g to a fixed point. It returns true if propagation
// completed without contradiction, false if it derived that some enabled
// clause can no longer be satisfied.
func Run(g *graph.Graph) bool {
	for {
		units := unitClauses(g)
		if len(units) == 0 {
			// No clause is left to force, but an assignment made before
			// this call (SID's decimation) may already have falsified
			// every edge of some enabled clause: that is a contradiction.
			for _, cid := range g.GetEnabledClauses() {
				if len(g.ClauseEnabledEdges(cid)) == 0 {
					return false
				}
			}
			return true
		}

		// Step 2: force the sole enabled edge's variable for every unit
		// clause found in this pass. Two unit clauses agreeing on the same
		// variable and polarity is a no-op, not an error (spec §4.2 edge
		// case); disagreeing is a contradiction.
		for _, cid := range units {
			edges := g.ClauseEnabledEdges(cid)
			e := g.Edge(edges[0])
			v := g.Variable(e.Var)
			if !v.Assigned {
				g.AssignValue(e.Var, e.Type)
			} else if v.Value != e.Type {
				return false
			}
		}

		// Step 3: sweep every enabled clause, disabling satisfied clauses
		// and falsified edges.
		for _, cid := range g.GetEnabledClauses() {
			if ok := sweepClause(g, cid); !ok {
				return false
			}
		}
	}
}

// unitClauses returns the ids of every enabled clause whose enabled-edge
// count is exactly 1.
func unitClauses(g *graph.Graph) []graph.ClauseID {
	var res []graph.ClauseID
	for _, cid := range g.GetEnabledClauses() {
		if len(g.ClauseEnabledEdges(cid)) == 1 {
			res = append(res, cid)
		}
	}
	return res
}

// sweepClause inspects every enabled edge of an enabled clause whose
// variable is now assigned: a satisfying edge disables the whole clause,
// a falsified edge is individually disabled. Returns false if the clause
// is left enabled with zero enabled edges (a contradiction).
func sweepClause(g *graph.Graph, cid graph.ClauseID) bool {
	for _, eid := range g.ClauseEnabledEdges(cid) {
		e := g.Edge(eid)
		v := g.Variable(e.Var)
		if !v.Assigned {
			continue
		}
		if v.Value == e.Type {
			g.DisableClause(cid)
			return true
		}
		g.DisableEdge(eid)
	}
	if g.Clause(cid).Enabled && len(g.ClauseEnabledEdges(cid)) == 0 {
		return false
	}
	return true
}
