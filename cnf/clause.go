package cnf

// Clause is an ordered disjunction of literals. Order is preserved for
// reproducibility (it drives the tie-breaks in package dpll's reduction
// rules) but carries no semantic weight beyond that the clause is a
// disjunction; duplicate literals and tautologies are tolerated.
type Clause []Literal

// ClauseStatus classifies a clause under a partial assignment. Exactly one
// of Satisfied, Falsified, Undetermined holds for any (clause, assignment)
// pair.
type ClauseStatus int

const (
	Undetermined ClauseStatus = iota
	Satisfied
	Falsified
)

func (s ClauseStatus) String() string {
	switch s {
	case Satisfied:
		return "satisfied"
	case Falsified:
		return "falsified"
	default:
		return "undetermined"
	}
}

// Status reports whether c is satisfied, falsified, or undetermined under
// store: satisfied if some literal evaluates true, falsified if every
// literal is assigned and every one evaluates false, undetermined
// otherwise.
func (c Clause) Status(store *AssignmentStore) ClauseStatus {
	allAssigned := true
	for _, lit := range c {
		value, assigned := lit.FinalValue(store)
		if !assigned {
			allAssigned = false
			continue
		}
		if value {
			return Satisfied
		}
	}
	if allAssigned {
		return Falsified
	}
	return Undetermined
}

// UnitLiteral returns the clause's single unassigned literal, if c is not
// satisfied and has exactly one unassigned literal. Otherwise it returns
// ok == false.
func (c Clause) UnitLiteral(store *AssignmentStore) (Literal, bool) {
	var candidate Literal
	unassignedCount := 0
	for _, lit := range c {
		value, assigned := lit.FinalValue(store)
		if assigned {
			if value {
				return Literal{}, false // satisfied
			}
			continue
		}
		unassignedCount++
		if unassignedCount > 1 {
			return Literal{}, false
		}
		candidate = lit
	}
	if unassignedCount == 1 {
		return candidate, true
	}
	return Literal{}, false
}
