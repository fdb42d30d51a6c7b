package walksat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/sidsat/config"
	"github.com/crillab/sidsat/graph"
)

// snapshot captures every variable's (Assigned, Value) pair, enough to
// detect any net effect of a flip-and-restore.
func snapshot(g *graph.Graph) []struct{ Assigned, Value bool } {
	res := make([]struct{ Assigned, Value bool }, g.NbVars())
	for i := range res {
		v := g.Variable(graph.VarID(i))
		res[i] = struct{ Assigned, Value bool }{v.Assigned, v.Value}
	}
	return res
}

// spec §8 invariant 5: break-count's temporary flip must leave the graph
// bit-identical to before.
func TestBreakCountHasNoNetEffect(t *testing.T) {
	g := graph.New(3)
	_, err := g.AddClause([]int{1, 2, 3})
	require.NoError(t, err)
	_, err = g.AddClause([]int{-1, 2, -3})
	require.NoError(t, err)
	g.AssignValue(0, true)
	g.AssignValue(1, false)
	g.AssignValue(2, true)

	before := snapshot(g)
	_ = breakCount(g, 0)
	after := snapshot(g)

	if diff := cmp.Diff(before, after, cmpopts.EquateComparable()); diff != "" {
		t.Errorf("breakCount left side effects (-before +after):\n%s", diff)
	}
}

func TestBreakCountCountsBrokenClauses(t *testing.T) {
	// (x1 v x2) alone satisfied only by x1=true; flipping x1 breaks it.
	g := graph.New(2)
	_, err := g.AddClause([]int{1, 2, 2}) // pad to 3 lits: x1 v x2 v x2
	require.NoError(t, err)
	g.AssignValue(0, true)
	g.AssignValue(1, false)
	assert.Equal(t, 1, breakCount(g, 0))
	assert.Equal(t, 0, breakCount(g, 1)) // flipping x2 doesn't affect a clause already satisfied by x1
}

// spec §8 invariant 6: WalkSAT never reads or writes disabled
// edges/clauses — exercised indirectly: a disabled clause is never
// selected, so a graph whose only clause is disabled leaves search nothing
// to pick from.
func TestSearchIgnoresDisabledClauses(t *testing.T) {
	g := graph.New(1)
	_, err := g.AddClause([]int{1})
	require.NoError(t, err)
	g.AssignValue(0, true) // satisfies the clause before it is retired
	g.DisableClause(0)
	// No enabled clauses remain; search must not panic trying to select
	// among zero unsatisfied enabled clauses, and since the lone clause is
	// already satisfied, graph.IsSAT() is true from the first check.
	cfg := config.Default()
	cfg.WSMaxTries = 1
	ok := Run(g, cfg)
	assert.True(t, ok)
}

func TestRunSolvesSmallSatisfiableInstance(t *testing.T) {
	g := graph.New(3)
	_, err := g.AddClause([]int{1, 2, 3})
	require.NoError(t, err)
	_, err = g.AddClause([]int{-1, 2, -3})
	require.NoError(t, err)
	_, err = g.AddClause([]int{1, -2, 3})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.WSMaxTries = 100
	cfg.WSMaxFlips = 1000
	ok := Run(g, cfg)
	require.True(t, ok)
	assert.True(t, g.IsSAT())
}
