package dpll

import "github.com/satcore/satcore/cnf"

// branchFunc performs the branch step at the top of the stack: it clones
// top into a sibling sub-problem, assigns name opposite values in top and
// the sibling, and makes the sibling available itself (pushing it onto
// the local stack in sequential mode, publishing it to the shared queue in
// parallel mode). It returns nothing.
type branchFunc func(stack *[]*cnf.Formula, top *cnf.Formula, name string)

// Solve runs the sequential DPLL procedure on f and returns the result.
// The search is iterative — an explicit stack of candidate partial models,
// never recursion — because search depth is proportional to the number of
// variables and can exceed native stack limits on large instances.
func Solve(f *cnf.Formula) cnf.Result {
	return run(f, localBranch)
}

// run drives the stack-based search loop shared by the sequential engine
// and each parallel worker; branch supplies the mode-specific branch
// operation (push sibling locally, or publish it to the shared queue).
func run(f *cnf.Formula, branch branchFunc) cnf.Result {
	stack := []*cnf.Formula{f}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		switch top.Status() {
		case cnf.Satisfied:
			// Every clause is already satisfied; give any variable left
			// unassigned the value false so the returned model is total.
			for _, name := range top.VariableNames() {
				if _, assigned := top.Lookup(name); !assigned {
					top.Assign(name, false)
				}
			}
			return cnf.Sat(top)
		case cnf.Falsified:
			stack = stack[:len(stack)-1]
			continue
		}

		if lit, ok := selectUnit(top); ok {
			top.Assign(lit.Name, lit.Positive)
			continue
		}
		if name, positive, ok := selectPure(top); ok {
			top.Assign(name, positive)
			continue
		}
		if name, ok := selectFirstUnassigned(top); ok {
			branch(&stack, top, name)
			continue
		}

		// No undetermined clause and no unassigned variable, yet the
		// formula is neither satisfied nor falsified: can't happen for a
		// well-formed formula, but the stack discipline still makes
		// progress by discarding this frame.
		stack = stack[:len(stack)-1]
	}
	return cnf.Unsat
}

// localBranch is the sequential-mode branch operation: clone top into a
// sibling B before either is assigned, assign name true in the original
// top, push B onto the stack, then assign name false in B. B, just
// pushed, is now the stack's top and is explored first; top
// (assigned true) sits beneath it and is what backtracking falls back to
// once B's subtree is exhausted. No assignment is ever undone in place —
// the sibling still holding the pre-branch state is the undo.
func localBranch(stack *[]*cnf.Formula, top *cnf.Formula, name string) {
	sibling := top.Clone()
	top.Assign(name, true)
	*stack = append(*stack, sibling)
	sibling.Assign(name, false)
}
