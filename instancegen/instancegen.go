// Package instancegen generates random 3-SAT instances for the experiment
// harness (spec §6: "experiments/instances/<generator>_3SAT_<N>N_<alpha>R_<i>.cnf").
// The distilled spec names the harness's file-naming convention but not
// what produces those files; this package supplies both generators its
// "[random|community]" CLI argument implies.
package instancegen

import "github.com/crillab/sidsat/rng"

// Clause is a CNF clause as three signed, 1-indexed DIMACS literals.
type Clause [3]int

// Instance is a generated 3-SAT formula, ready to be written as DIMACS or
// fed directly to graph.New/AddClause.
type Instance struct {
	NbVars  int
	Clauses []Clause
}

// Random generates a uniform-random 3-SAT instance: nbClauses clauses of 3
// distinct variables drawn uniformly from [1,nbVars], each uniformly
// negated, with nbClauses = ceil(alpha*nbVars).
func Random(nbVars int, alpha float64) Instance {
	nbClauses := nbClausesFor(nbVars, alpha)
	inst := Instance{NbVars: nbVars, Clauses: make([]Clause, nbClauses)}
	for i := range inst.Clauses {
		inst.Clauses[i] = randomClause(nbVars)
	}
	return inst
}

// Community generates a planted-community 3-SAT instance: variables are
// partitioned into communities of roughly equal size, and each clause
// draws its 3 variables from a single randomly chosen community (falling
// back to a uniform draw when nbVars is too small to split meaningfully),
// producing the clustered variable-interaction structure that community
// generators in the 3-SAT literature use to probe solvers beyond the
// uniform-random ensemble.
func Community(nbVars int, alpha float64, nbCommunities int) Instance {
	if nbCommunities < 1 {
		nbCommunities = 1
	}
	nbClauses := nbClausesFor(nbVars, alpha)
	inst := Instance{NbVars: nbVars, Clauses: make([]Clause, nbClauses)}

	communities := partition(nbVars, nbCommunities)
	for i := range inst.Clauses {
		community := communities[rng.Intn(len(communities))]
		if len(community) < 3 {
			inst.Clauses[i] = randomClause(nbVars)
			continue
		}
		inst.Clauses[i] = randomClauseFrom(community)
	}
	return inst
}

func nbClausesFor(nbVars int, alpha float64) int {
	n := int(alpha * float64(nbVars))
	if float64(n) < alpha*float64(nbVars) {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// partition splits [1,nbVars] into nbCommunities contiguous, roughly
// equal-sized groups of variable numbers.
func partition(nbVars, nbCommunities int) [][]int {
	groups := make([][]int, nbCommunities)
	size := nbVars / nbCommunities
	if size < 1 {
		size = 1
	}
	v := 1
	for i := 0; i < nbCommunities && v <= nbVars; i++ {
		end := v + size
		if i == nbCommunities-1 || end > nbVars {
			end = nbVars + 1
		}
		for ; v < end; v++ {
			groups[i] = append(groups[i], v)
		}
	}
	return groups
}

// randomClause draws 3 distinct variables uniformly from [1,nbVars], each
// independently negated.
func randomClause(nbVars int) Clause {
	return randomClauseFrom(allVars(nbVars))
}

func allVars(nbVars int) []int {
	vars := make([]int, nbVars)
	for i := range vars {
		vars[i] = i + 1
	}
	return vars
}

// randomClauseFrom draws 3 distinct variables from pool (sampling without
// replacement via partial Fisher-Yates), each independently negated. If
// pool has fewer than 3 variables, only len(pool) literals are drawn and
// the remaining ones are left 0; nothing is padded. Community checks
// len(pool) >= 3 before calling it.
func randomClauseFrom(pool []int) Clause {
	chosen := make([]int, len(pool))
	copy(chosen, pool)
	var c Clause
	n := len(chosen)
	for i := 0; i < 3 && i < n; i++ {
		j := i + rng.Intn(n-i)
		chosen[i], chosen[j] = chosen[j], chosen[i]
		lit := chosen[i]
		if rng.Bool() {
			lit = -lit
		}
		c[i] = lit
	}
	return c
}
