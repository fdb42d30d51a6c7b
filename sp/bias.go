package sp

import "github.com/crillab/sidsat/graph"

// EvalValue computes the bias of variable id from its incident enabled
// edges' surveys (spec §4.6). The sign is the preferred assignment
// (positive -> true), the magnitude the confidence used to rank variables
// for decimation. Returns 0 for a variable with no incident enabled edges,
// or when the underlying ratio is the degenerate 0/0 case.
func EvalValue(g *graph.Graph, id graph.VarID) float64 {
	pPlus, pMinus, p0 := 1.0, 1.0, 1.0
	for _, eid := range g.VariableEnabledEdges(id) {
		e := g.Edge(eid)
		factor := 1 - e.Survey
		p0 *= factor
		if e.Type {
			pPlus *= factor
		} else {
			pMinus *= factor
		}
	}

	piPlus := (1 - pPlus) * pMinus
	piMinus := (1 - pMinus) * pPlus
	denom := piPlus + piMinus + p0
	if denom == 0 {
		return 0
	}
	wPlus := piPlus / denom
	wMinus := piMinus / denom
	return wPlus - wMinus
}
