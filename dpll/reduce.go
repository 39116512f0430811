// Package dpll implements the Davis-Putnam-Logemann-Loveland search
// procedure: the sequential engine (engine.go), the rules it applies at
// each step (reduce.go), and the parallel coordinator that spreads branch
// exploration across a worker pool (coordinator.go).
package dpll

import "github.com/satcore/satcore/cnf"

// selectUnit returns a unit literal from the first currently-unsatisfied
// clause that has one, or ok == false if none exists. Ties are broken by
// first occurrence in clause order, then intra-clause order — the order
// Formula.Clauses and each cnf.Clause already iterate in.
func selectUnit(f *cnf.Formula) (cnf.Literal, bool) {
	store := f.Store()
	for _, clause := range f.Clauses {
		if lit, ok := clause.UnitLiteral(store); ok {
			return lit, true
		}
	}
	return cnf.Literal{}, false
}

// selectPure returns a variable name and the polarity it exclusively
// appears with, considering only currently-unsatisfied clauses, or
// ok == false if no such variable exists.
//
// This reads the declared polarity of every literal occurrence in every
// unsatisfied clause, whether or not that literal's variable happens to
// already be assigned. Gating this scan on "assigned" would make
// pure-literal elimination a no-op before any assignment exists, which is
// wrong: a variable that only ever appears positively in the formula is
// pure regardless of the current assignment.
func selectPure(f *cnf.Formula) (name string, positive bool, ok bool) {
	store := f.Store()
	seenPositive := make(map[string]bool)
	seenNegative := make(map[string]bool)
	for _, name := range f.VariableNames() {
		for _, occ := range f.Occurrences(name) {
			clause := f.Clauses[occ.ClauseIndex]
			if clause.Status(store) == cnf.Satisfied {
				continue
			}
			lit := f.Literal(occ)
			if lit.Positive {
				seenPositive[lit.Name] = true
			} else {
				seenNegative[lit.Name] = true
			}
		}
	}
	for _, candidate := range f.VariableNames() {
		if _, assigned := f.Lookup(candidate); assigned {
			continue
		}
		pos, neg := seenPositive[candidate], seenNegative[candidate]
		if pos && !neg {
			return candidate, true, true
		}
		if neg && !pos {
			return candidate, false, true
		}
	}
	return "", false, false
}

// selectFirstUnassigned returns the first unassigned variable name in
// index order, or ok == false if every variable is assigned.
func selectFirstUnassigned(f *cnf.Formula) (name string, ok bool) {
	for _, candidate := range f.VariableNames() {
		if _, assigned := f.Lookup(candidate); !assigned {
			return candidate, true
		}
	}
	return "", false
}
