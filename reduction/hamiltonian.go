package reduction

import (
	"sort"
	"strconv"

	"github.com/satcore/satcore/cnf"
)

// HamiltonianPath encodes "does g have a Hamiltonian path" as a CNF
// formula: one boolean variable per (vertex, position) pair (1-indexed
// positions over len(g.Vertices) slots), at-least/at-most-one-position-
// per-vertex and at-least/at-most-one-vertex-per-position clauses, and a
// clause forbidding any non-adjacent pair from occupying consecutive
// positions.
func HamiltonianPath(g *Graph) *cnf.Formula {
	n := len(g.Vertices)
	var clauses []cnf.Clause

	adjacent := make(map[[2]string]bool)
	for _, e := range g.Edges {
		adjacent[[2]string{e[0], e[1]}] = true
		adjacent[[2]string{e[1], e[0]}] = true
	}

	for _, v := range g.Vertices {
		atLeastOne := make(cnf.Clause, n)
		for pos := 1; pos <= n; pos++ {
			atLeastOne[pos-1] = positionVar(v, pos)
		}
		clauses = append(clauses, atLeastOne)
		for p1 := 1; p1 <= n; p1++ {
			for p2 := p1 + 1; p2 <= n; p2++ {
				clauses = append(clauses, cnf.Clause{
					positionVar(v, p1).Negate(),
					positionVar(v, p2).Negate(),
				})
			}
		}
	}

	for pos := 1; pos <= n; pos++ {
		atLeastOne := make(cnf.Clause, len(g.Vertices))
		for i, v := range g.Vertices {
			atLeastOne[i] = positionVar(v, pos)
		}
		clauses = append(clauses, atLeastOne)
		for i := 0; i < len(g.Vertices); i++ {
			for j := i + 1; j < len(g.Vertices); j++ {
				clauses = append(clauses, cnf.Clause{
					positionVar(g.Vertices[i], pos).Negate(),
					positionVar(g.Vertices[j], pos).Negate(),
				})
			}
		}
	}

	for _, u := range g.Vertices {
		for _, v := range g.Vertices {
			if u == v || adjacent[[2]string{u, v}] {
				continue
			}
			for pos := 1; pos < n; pos++ {
				clauses = append(clauses, cnf.Clause{
					positionVar(u, pos).Negate(),
					positionVar(v, pos+1).Negate(),
				})
			}
		}
	}

	return cnf.NewFormula(clauses)
}

// InterpretHamiltonianPath reads a model produced by solving the formula
// HamiltonianPath built and returns the vertex order.
func InterpretHamiltonianPath(g *Graph, model *cnf.Formula) []string {
	n := len(g.Vertices)
	positionOf := make(map[string]int, n)
	for _, v := range g.Vertices {
		for pos := 1; pos <= n; pos++ {
			value, assigned := model.Lookup(positionVar(v, pos).Name)
			if assigned && value {
				positionOf[v] = pos
				break
			}
		}
	}
	order := append([]string(nil), g.Vertices...)
	sort.Slice(order, func(i, j int) bool {
		return positionOf[order[i]] < positionOf[order[j]]
	})
	return order
}

func positionVar(vertex string, pos int) cnf.Literal {
	return cnf.NewLiteral("pos_"+vertex+"_"+strconv.Itoa(pos), true)
}
