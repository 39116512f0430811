// Package result renders a cnf.Result the way the CLI (and the graph
// reduction front ends, before they reinterpret it further) present it to
// a user.
package result

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/satcore/satcore/cnf"
)

// Unsatisfiable is the fixed string printed for an UNSAT result.
const Unsatisfiable = "Unsatisfiable."

// Format renders r: for UNSAT, the fixed string Unsatisfiable; for SAT,
// one "name: true|false" line per unique variable name in the model, in
// stable order (digit-only names compared numerically, otherwise
// lexicographically).
func Format(r cnf.Result) string {
	if !r.Sat {
		return Unsatisfiable
	}
	names := sortedNames(r.Model)
	lines := make([]string, len(names))
	for i, name := range names {
		value, _ := r.Model.Lookup(name)
		lines[i] = fmt.Sprintf("%s: %t", name, value)
	}
	return strings.Join(lines, "\n")
}

func sortedNames(f *cnf.Formula) []string {
	names := append([]string(nil), f.VariableNames()...)
	numeric := true
	for _, n := range names {
		if !isDigits(n) {
			numeric = false
			break
		}
	}
	if numeric {
		sort.Slice(names, func(i, j int) bool {
			ni, _ := strconv.Atoi(names[i])
			nj, _ := strconv.Atoi(names[j])
			return ni < nj
		})
	} else {
		sort.Strings(names)
	}
	return names
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
