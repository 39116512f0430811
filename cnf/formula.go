package cnf

// Occurrence locates one literal occurrence inside a Formula's clause list.
type Occurrence struct {
	ClauseIndex  int
	LiteralIndex int
}

// Formula is a CNF instance: its clauses, an index from variable name to
// every occurrence of that name (so assignment is O(#occurrences) rather
// than O(#literals)), and the assignment state shared by every occurrence.
//
// Invariant: the index's key set equals the set of names appearing in
// Clauses, and the concatenation of its occurrence lists equals the
// multiset of literal occurrences across Clauses.
type Formula struct {
	Clauses []Clause

	names []string // first-appearance order, drives first-unassigned/pure tie-breaks
	index map[string][]Occurrence
	store *AssignmentStore
}

// NewFormula builds a Formula from a clause list, constructing the
// name index and a fresh, all-unassigned assignment store.
func NewFormula(clauses []Clause) *Formula {
	f := &Formula{
		Clauses: clauses,
		index:   make(map[string][]Occurrence),
		store:   NewAssignmentStore(),
	}
	f.reindex()
	return f
}

func (f *Formula) reindex() {
	f.index = make(map[string][]Occurrence, len(f.index))
	f.names = f.names[:0]
	for ci, clause := range f.Clauses {
		for li, lit := range clause {
			occ := Occurrence{ClauseIndex: ci, LiteralIndex: li}
			if _, ok := f.index[lit.Name]; !ok {
				f.names = append(f.names, lit.Name)
			}
			f.index[lit.Name] = append(f.index[lit.Name], occ)
		}
	}
}

// VariableNames returns every variable name appearing in the formula, in
// first-appearance (index) order. Callers must not mutate the result.
func (f *Formula) VariableNames() []string {
	return f.names
}

// Occurrences returns every literal occurrence of name, or nil if name
// does not appear in the formula.
func (f *Formula) Occurrences(name string) []Occurrence {
	return f.index[name]
}

// Literal returns the literal at the given occurrence.
func (f *Formula) Literal(occ Occurrence) Literal {
	return f.Clauses[occ.ClauseIndex][occ.LiteralIndex]
}

// Store returns the formula's assignment store, for use by the clause
// evaluator and the reduction rules.
func (f *Formula) Store() *AssignmentStore {
	return f.store
}

// Assign sets every occurrence of name to value (in practice this just
// updates the single shared AssignmentStore entry for name; every literal
// occurrence reads through it). A name absent from the index is a no-op.
func (f *Formula) Assign(name string, value bool) {
	if _, ok := f.index[name]; !ok {
		return
	}
	f.store.Assign(name, value)
}

// Unassign reverts name to unassigned. No-op if not assigned or unknown.
func (f *Formula) Unassign(name string) {
	f.store.Unassign(name)
}

// Lookup returns the current value and assigned state of name.
func (f *Formula) Lookup(name string) (value, assigned bool) {
	return f.store.Lookup(name)
}

// Clone returns a new Formula whose clauses and assignment state are
// value-equal to f but reference-independent: mutating either copy never
// affects the other. Clone is O(total literals).
func (f *Formula) Clone() *Formula {
	clauses := make([]Clause, len(f.Clauses))
	for i, c := range f.Clauses {
		clauses[i] = make(Clause, len(c))
		copy(clauses[i], c)
	}
	clone := &Formula{
		Clauses: clauses,
		store:   f.store.Clone(),
	}
	clone.reindex()
	return clone
}

// Status classifies the whole formula under its current assignment: it is
// satisfied when every clause is satisfied, falsified when some clause is
// falsified, and undetermined otherwise.
func (f *Formula) Status() ClauseStatus {
	anyUndetermined := false
	for _, c := range f.Clauses {
		switch c.Status(f.store) {
		case Falsified:
			return Falsified
		case Undetermined:
			anyUndetermined = true
		}
	}
	if anyUndetermined {
		return Undetermined
	}
	return Satisfied
}

// Result is the outcome of a search: either UNSAT (Sat == false, Model ==
// nil) or SAT with a total model.
type Result struct {
	Sat   bool
	Model *Formula
}

// Unsat is the canonical UNSAT result.
var Unsat = Result{}

// Sat wraps model into a SAT result.
func Sat(model *Formula) Result {
	return Result{Sat: true, Model: model}
}
