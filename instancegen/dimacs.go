package instancegen

import "fmt"

// CNF renders the instance as a DIMACS CNF stream, in the same format
// gophersat's Problem.CNF renders its own problems.
func (inst Instance) CNF() string {
	res := fmt.Sprintf("c generated instance\np cnf %d %d\n", inst.NbVars, len(inst.Clauses))
	for _, c := range inst.Clauses {
		res += fmt.Sprintf("%d %d %d 0\n", c[0], c[1], c[2])
	}
	return res
}
