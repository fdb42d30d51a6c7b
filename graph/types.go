// Package graph implements the factor-graph representation shared by
// Survey Propagation, Unit Propagation, WalkSAT and the SID driver: a
// bipartite graph of variables and clauses connected by typed edges.
//
// The graph owns three flat arenas (variables, clauses, edges) and every
// cross-reference between them is a dense integer index rather than a
// pointer, breaking the natural ownership cycle between a variable, its
// clauses and their shared edges (design notes §9).
package graph

import "fmt"

// VarID indexes into Graph.variables.
type VarID int32

// ClauseID indexes into Graph.clauses.
type ClauseID int32

// EdgeID indexes into Graph.edges.
type EdgeID int32

// noEdge marks the absence of an edge where an EdgeID is expected.
const noEdge = EdgeID(-1)

func (v VarID) String() string    { return fmt.Sprintf("x%d", int(v)+1) }
func (c ClauseID) String() string { return fmt.Sprintf("c%d", int(c)) }
