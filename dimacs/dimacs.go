// Package dimacs reads the DIMACS CNF format described in spec §6: comment
// lines starting with 'c', a header "p cnf N M", and M clauses of
// space-separated signed integers terminated by 0.
//
// Parsing is an external collaborator to the core factor-graph package
// (spec §1); this package knows nothing about surveys or propagation, it
// only turns a byte stream into a *graph.Graph.
//
// Unlike gophersat's solver.ParseCNF, which walks the stream one byte at a
// time, this reads line by line with bufio.Scanner and tokenizes each line
// with strings.Fields: DIMACS CNF overwhelmingly puts one clause per line,
// so a line-and-token split is the natural unit here, with a small
// carry-over buffer for the rare clause that spans more than one line (see
// DESIGN.md).
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/sidsat/graph"
)

// Parse reads a DIMACS CNF stream and returns the corresponding factor
// graph (spec §6's "load_graph(cnf_stream) → Graph").
func Parse(f io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(f)
	var g *graph.Graph
	var lits []int
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue
		case 'p':
			nbVars, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("cannot parse CNF header on line %d: %w", lineNo, err)
			}
			g = graph.New(nbVars)
		default:
			if g == nil {
				return nil, fmt.Errorf("clause found before %q header on line %d", "p cnf", lineNo)
			}
			var err error
			lits, err = scanClauseLine(g, lits, line, lineNo)
			if err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read CNF stream: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("no \"p cnf\" header found")
	}
	if len(lits) != 0 {
		return nil, fmt.Errorf("unfinished clause at end of file")
	}
	return g, nil
}

// parseHeader parses a "p cnf N M" line, returning N. M (the declared
// clause count) is only a size hint in the teacher's own Problem type and
// is not otherwise needed: graph.Graph grows its clause arena by append.
func parseHeader(line string) (nbVars int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[0] != "p" || fields[1] != "cnf" {
		return 0, fmt.Errorf("invalid header %q, expected \"p cnf N M\"", line)
	}
	nbVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("nbvars not an int: %q", fields[2])
	}
	if _, err := strconv.Atoi(fields[3]); err != nil {
		return 0, fmt.Errorf("nbclauses not an int: %q", fields[3])
	}
	return nbVars, nil
}

// scanClauseLine tokenizes one clause (or clause-continuation) line,
// appending literals to lits and flushing a completed clause into g every
// time a terminating 0 is read. It returns the updated, possibly-partial
// lits buffer for the next line to continue.
func scanClauseLine(g *graph.Graph, lits []int, line string, lineNo int) ([]int, error) {
	for _, tok := range strings.Fields(line) {
		val, err := strconv.Atoi(tok)
		if err != nil {
			return lits, fmt.Errorf("cannot parse literal %q on line %d: %w", tok, lineNo, err)
		}
		if val == 0 {
			if _, err := g.AddClause(lits); err != nil {
				return lits, err
			}
			lits = lits[:0]
			continue
		}
		lits = append(lits, val)
	}
	return lits, nil
}
