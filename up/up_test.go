package up

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/sidsat/graph"
)

func buildGraph(t *testing.T, nbVars int, clauses [][]int) *graph.Graph {
	t.Helper()
	g := graph.New(nbVars)
	for _, c := range clauses {
		_, err := g.AddClause(c)
		require.NoError(t, err)
	}
	return g
}

// spec §8 scenario 1: trivial SAT, single clause "x1 0".
func TestTrivialSAT(t *testing.T) {
	g := buildGraph(t, 1, [][]int{{1}})
	ok := Run(g)
	require.True(t, ok)
	v := g.Variable(0)
	assert.True(t, v.Assigned)
	assert.True(t, v.Value)
	assert.True(t, g.IsSAT())
}

// spec §8 scenario 2: trivial contradiction, "x1 0" and "-x1 0".
func TestTrivialContradiction(t *testing.T) {
	g := buildGraph(t, 1, [][]int{{1}, {-1}})
	ok := Run(g)
	assert.False(t, ok)
}

// spec §8 scenario 4: forced chain, UP alone solves it.
func TestForcedChain(t *testing.T) {
	g := buildGraph(t, 3, [][]int{{1}, {-1, 2}, {-2, 3}})
	ok := Run(g)
	require.True(t, ok)
	assert.True(t, g.Variable(0).Value)
	assert.True(t, g.Variable(1).Value)
	assert.True(t, g.Variable(2).Value)
	assert.True(t, g.IsSAT())
}

// spec §8 invariant 4: UP is idempotent.
func TestIdempotent(t *testing.T) {
	g := buildGraph(t, 3, [][]int{{1}, {-1, 2}, {-2, 3}})
	require.True(t, Run(g))

	snapshotAssigned := make([]bool, g.NbVars())
	snapshotValue := make([]bool, g.NbVars())
	for i := 0; i < g.NbVars(); i++ {
		v := g.Variable(graph.VarID(i))
		snapshotAssigned[i] = v.Assigned
		snapshotValue[i] = v.Value
	}
	snapshotEnabledClauses := len(g.GetEnabledClauses())

	require.True(t, Run(g))

	for i := 0; i < g.NbVars(); i++ {
		v := g.Variable(graph.VarID(i))
		assert.Equal(t, snapshotAssigned[i], v.Assigned)
		assert.Equal(t, snapshotValue[i], v.Value)
	}
	assert.Equal(t, snapshotEnabledClauses, len(g.GetEnabledClauses()))
}

// Edge case from spec §4.2: two unit clauses force the same variable to
// the same value in a single pass; the second assignment must be a no-op,
// not an error.
func TestDuplicateUnitAssignmentIsNoop(t *testing.T) {
	g := buildGraph(t, 1, [][]int{{1}, {1}})
	ok := Run(g)
	assert.True(t, ok)
	assert.True(t, g.Variable(0).Value)
}

func Test3SATSmallSatisfiable(t *testing.T) {
	// (x1 v x2 v x3) & (-x1 v x2 v -x3) & (x1 v -x2 v x3)
	g := buildGraph(t, 3, [][]int{
		{1, 2, 3},
		{-1, 2, -3},
		{1, -2, 3},
	})
	// UP alone makes no progress on this instance (no unit clauses), so it
	// should report completion without assigning anything.
	ok := Run(g)
	assert.True(t, ok)
	for i := 0; i < g.NbVars(); i++ {
		assert.False(t, g.Variable(graph.VarID(i)).Assigned)
	}
}
