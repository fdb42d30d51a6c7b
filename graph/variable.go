package graph

// Variable is a Boolean unknown identified by a non-negative integer id (the
// DIMACS variable number minus one). Assigned/Value/EvalValue are mutated
// in place by UP, SID and WalkSAT; the incident-edge list is fixed at
// construction time.
type Variable struct {
	ID VarID

	Assigned bool
	Value    bool // meaningful only when Assigned

	// EvalValue is the SP-derived bias in [-1,1]; sign is the preferred
	// polarity, magnitude the confidence (spec §3, §4.6).
	EvalValue float64

	edges []EdgeID // incident edges, in construction order
}

// Edges returns every edge incident to v, enabled or not, in construction
// order.
func (v *Variable) Edges() []EdgeID {
	return v.edges
}
