package reduction

import (
	"strconv"

	"github.com/satcore/satcore/cnf"
)

const threeColors = 3

// ThreeColoring encodes "is g 3-colorable" as a CNF formula: one boolean
// variable per (vertex, color) pair, at-least-one-color-per-vertex
// clauses, at-most-one-color-per-vertex clauses, and a no-two-adjacent-
// same-color clause per edge per color.
func ThreeColoring(g *Graph) *cnf.Formula {
	var clauses []cnf.Clause

	for _, v := range g.Vertices {
		atLeastOne := make(cnf.Clause, threeColors)
		for c := 0; c < threeColors; c++ {
			atLeastOne[c] = colorVar(v, c)
		}
		clauses = append(clauses, atLeastOne)

		for c1 := 0; c1 < threeColors; c1++ {
			for c2 := c1 + 1; c2 < threeColors; c2++ {
				clauses = append(clauses, cnf.Clause{
					colorVar(v, c1).Negate(),
					colorVar(v, c2).Negate(),
				})
			}
		}
	}

	for _, e := range g.Edges {
		for c := 0; c < threeColors; c++ {
			clauses = append(clauses, cnf.Clause{
				colorVar(e[0], c).Negate(),
				colorVar(e[1], c).Negate(),
			})
		}
	}

	return cnf.NewFormula(clauses)
}

// InterpretThreeColoring reads a model produced by solving the formula
// ThreeColoring built and returns each vertex's assigned color index
// (0, 1, or 2).
func InterpretThreeColoring(g *Graph, model *cnf.Formula) map[string]int {
	colors := make(map[string]int, len(g.Vertices))
	for _, v := range g.Vertices {
		for c := 0; c < threeColors; c++ {
			value, assigned := model.Lookup(colorVar(v, c).Name)
			if assigned && value {
				colors[v] = c
				break
			}
		}
	}
	return colors
}

func colorVar(vertex string, color int) cnf.Literal {
	return cnf.NewLiteral("color_"+vertex+"_"+strconv.Itoa(color), true)
}
