package graph

import "fmt"

// Graph is a bipartite factor graph: variables on one side, clauses on the
// other, connected by edges recording literal membership. It exclusively
// owns every Variable, Clause and Edge for the lifetime of one solve;
// Variable and Clause hold only non-owning EdgeID back-references (spec
// §3).
//
// Enabled-ness is monotonic for the lifetime of one SID call: once an edge
// or clause is disabled it never re-enables. The graph-wide enabled-edge
// and enabled-clause views are cached and invalidated on every disable, so
// that repeated calls in SP's hot loop are cheap (spec §4.1).
type Graph struct {
	variables []Variable
	clauses   []Clause
	edges     []Edge

	enabledEdges      []EdgeID
	enabledEdgesValid bool

	enabledClauses      []ClauseID
	enabledClausesValid bool
}

// New returns an empty graph sized for nbVars variables. Clauses are added
// with AddClause.
func New(nbVars int) *Graph {
	g := &Graph{
		variables: make([]Variable, nbVars),
	}
	for i := range g.variables {
		g.variables[i].ID = VarID(i)
	}
	return g
}

// NbVars returns the number of variables in the graph.
func (g *Graph) NbVars() int { return len(g.variables) }

// NbClauses returns the number of clauses in the graph (enabled or not).
func (g *Graph) NbClauses() int { return len(g.clauses) }

// Variable returns a pointer to the variable with the given id.
func (g *Graph) Variable(id VarID) *Variable { return &g.variables[id] }

// Clause returns a pointer to the clause with the given id.
func (g *Graph) Clause(id ClauseID) *Clause { return &g.clauses[id] }

// Edge returns a pointer to the edge with the given id.
func (g *Graph) Edge(id EdgeID) *Edge { return &g.edges[id] }

// AddClause adds a clause made of the given signed literals (positive v
// means variable v-1 appears unnegated, negative -v means negated; v is
// 1-indexed as in DIMACS). It returns the new clause's id.
func (g *Graph) AddClause(lits []int) (ClauseID, error) {
	cid := ClauseID(len(g.clauses))
	c := Clause{ID: cid, Enabled: true}
	for _, lit := range lits {
		if lit == 0 {
			return 0, fmt.Errorf("graph: literal 0 is not a valid clause member")
		}
		vid := VarID(abs(lit) - 1)
		if int(vid) >= len(g.variables) {
			return 0, fmt.Errorf("graph: literal %d references variable %d, but graph only has %d variables", lit, vid+1, len(g.variables))
		}
		eid := EdgeID(len(g.edges))
		g.edges = append(g.edges, Edge{
			ID:      eid,
			Var:     vid,
			Clause:  cid,
			Type:    lit > 0,
			Enabled: true,
			Survey:  0,
		})
		c.edges = append(c.edges, eid)
		g.variables[vid].edges = append(g.variables[vid].edges, eid)
	}
	g.clauses = append(g.clauses, c)
	g.invalidate()
	return cid, nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func (g *Graph) invalidate() {
	g.enabledEdgesValid = false
	g.enabledClausesValid = false
}

// DisableClause marks a clause disabled. Monotonic: disabling an already
// disabled clause is a no-op.
func (g *Graph) DisableClause(id ClauseID) {
	c := &g.clauses[id]
	if !c.Enabled {
		return
	}
	c.Enabled = false
	g.invalidate()
}

// DisableEdge marks an edge disabled. Monotonic: disabling an already
// disabled edge is a no-op.
func (g *Graph) DisableEdge(id EdgeID) {
	e := &g.edges[id]
	if !e.Enabled {
		return
	}
	e.Enabled = false
	g.invalidate()
}

// AssignValue assigns value to the variable with the given id.
func (g *Graph) AssignValue(id VarID, value bool) {
	v := &g.variables[id]
	v.Assigned = true
	v.Value = value
}

// Unassign clears a variable's assignment. UP, SID and WalkSAT do not call
// it: they only ever assign.
func (g *Graph) Unassign(id VarID) {
	v := &g.variables[id]
	v.Assigned = false
	v.Value = false
}

// GetEnabledEdges returns every edge in the graph whose own Enabled flag is
// set and whose owning clause is also enabled, in construction (id) order.
// A clause being disabled retires its edges from graph-wide and per-variable
// message passing even if some of those edges individually still carry
// Enabled=true (spec §3: a disabled clause need not have disabled edges).
func (g *Graph) GetEnabledEdges() []EdgeID {
	if !g.enabledEdgesValid {
		g.rebuildEnabledEdges()
	}
	return g.enabledEdges
}

func (g *Graph) rebuildEnabledEdges() {
	g.enabledEdges = g.enabledEdges[:0]
	for i := range g.edges {
		e := &g.edges[i]
		if e.Enabled && g.clauses[e.Clause].Enabled {
			g.enabledEdges = append(g.enabledEdges, e.ID)
		}
	}
	g.enabledEdgesValid = true
}

// GetEnabledClauses returns every clause in the graph with Enabled set, in
// construction (id) order.
func (g *Graph) GetEnabledClauses() []ClauseID {
	if !g.enabledClausesValid {
		g.enabledClauses = g.enabledClauses[:0]
		for i := range g.clauses {
			if g.clauses[i].Enabled {
				g.enabledClauses = append(g.enabledClauses, g.clauses[i].ID)
			}
		}
		g.enabledClausesValid = true
	}
	return g.enabledClauses
}

// GetUnassignedVariables returns every variable not yet assigned, in id
// order.
func (g *Graph) GetUnassignedVariables() []VarID {
	res := make([]VarID, 0, len(g.variables))
	for i := range g.variables {
		if !g.variables[i].Assigned {
			res = append(res, g.variables[i].ID)
		}
	}
	return res
}

// VariableEnabledEdges returns the incident edges of variable id that are
// enabled and whose owning clause is also enabled, in construction order.
func (g *Graph) VariableEnabledEdges(id VarID) []EdgeID {
	v := &g.variables[id]
	res := make([]EdgeID, 0, len(v.edges))
	for _, eid := range v.edges {
		e := &g.edges[eid]
		if e.Enabled && g.clauses[e.Clause].Enabled {
			res = append(res, eid)
		}
	}
	return res
}

// ClauseEnabledEdges returns the incident edges of clause id with
// Enabled set, in construction order. Unlike VariableEnabledEdges, this
// does not itself check whether the clause is enabled: its callers (UP,
// SP's per-edge update and WalkSAT) apply it to clauses they have already
// selected as enabled.
func (g *Graph) ClauseEnabledEdges(id ClauseID) []EdgeID {
	c := &g.clauses[id]
	res := make([]EdgeID, 0, len(c.edges))
	for _, eid := range c.edges {
		if g.edges[eid].Enabled {
			res = append(res, eid)
		}
	}
	return res
}

// ClauseIsSAT reports whether clause id has at least one incident edge
// whose variable is assigned with value equal to the edge's type,
// regardless of whether that edge or the clause itself is enabled (spec
// §3: "A clause is satisfied iff any incident edge has type ==
// variable.value and the variable is assigned").
func (g *Graph) ClauseIsSAT(id ClauseID) bool {
	c := &g.clauses[id]
	for _, eid := range c.edges {
		e := &g.edges[eid]
		v := &g.variables[e.Var]
		if v.Assigned && v.Value == e.Type {
			return true
		}
	}
	return false
}

// IsSAT reports whether every clause in the graph, enabled or not, is
// satisfied by the current (possibly partial) assignment (spec §3).
func (g *Graph) IsSAT() bool {
	for i := range g.clauses {
		if !g.ClauseIsSAT(g.clauses[i].ID) {
			return false
		}
	}
	return true
}
