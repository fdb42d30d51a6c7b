package graph

// Clause is a disjunction of literals, identified by an integer id. In
// 3-SAT every clause has exactly 3 incident edges, connecting 3 distinct
// variables (spec §3 invariant).
type Clause struct {
	ID      ClauseID
	Enabled bool

	edges []EdgeID // incident edges, in construction order
}

// Edges returns every edge incident to c, enabled or not, in construction
// order.
func (c *Clause) Edges() []EdgeID {
	return c.edges
}
