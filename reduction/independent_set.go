package reduction

import (
	"github.com/satcore/satcore/cnf"
)

// IndependentSet encodes "does g have an independent set of size >= k" as
// a CNF formula over one boolean variable per vertex (true meaning "in
// the set"). Edges forbid selecting both endpoints; a combinatorial
// at-least-k clause set forbids selecting fewer than k vertices overall.
// The at-least-k encoding enumerates every (n-k+1)-subset of vertices, so
// it is intended for the modest instance sizes this toy solver already
// targets, not for large graphs.
func IndependentSet(g *Graph, k int) *cnf.Formula {
	var clauses []cnf.Clause

	for _, e := range g.Edges {
		clauses = append(clauses, cnf.Clause{
			selectionVar(e[0]).Negate(),
			selectionVar(e[1]).Negate(),
		})
	}

	n := len(g.Vertices)
	if k > 0 && k <= n {
		subsetSize := n - k + 1
		forEachCombination(g.Vertices, subsetSize, func(subset []string) {
			clause := make(cnf.Clause, len(subset))
			for i, v := range subset {
				clause[i] = selectionVar(v)
			}
			clauses = append(clauses, clause)
		})
	} else if k > n {
		// Fewer than k vertices exist: the empty clause makes the formula UNSAT.
		clauses = append(clauses, cnf.Clause{})
	}

	return cnf.NewFormula(clauses)
}

// InterpretIndependentSet reads a model produced by solving the formula
// IndependentSet built and returns the selected vertices.
func InterpretIndependentSet(g *Graph, model *cnf.Formula) []string {
	var selected []string
	for _, v := range g.Vertices {
		value, assigned := model.Lookup(selectionVar(v).Name)
		if assigned && value {
			selected = append(selected, v)
		}
	}
	return selected
}

func selectionVar(vertex string) cnf.Literal {
	return cnf.NewLiteral("select_"+vertex, true)
}

// forEachCombination calls f once for every size-sized subset of items,
// in lexicographic order of index.
func forEachCombination(items []string, size int, f func(subset []string)) {
	if size <= 0 || size > len(items) {
		return
	}
	chosen := make([]int, size)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == size {
			subset := make([]string, size)
			for i, idx := range chosen {
				subset[i] = items[idx]
			}
			f(subset)
			return
		}
		for i := start; i <= len(items)-(size-depth); i++ {
			chosen[depth] = i
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}
