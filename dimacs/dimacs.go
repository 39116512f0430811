// Package dimacs parses and writes the DIMACS CNF text format consumed and
// produced by package cnf's Formula type. It is an external collaborator
// to the DPLL core: the core never imports this package, and this package
// depends on cnf only for the data model, not on dpll.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/satcore/satcore/cnf"
)

// MalformedInput is returned when the header is absent or ill-formed, a
// token cannot be converted, or the stream ends before the declared
// clause count has been read. Never raised by package dpll.
type MalformedInput struct {
	Line   int
	Reason string
}

func (e *MalformedInput) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed DIMACS input at line %d: %s", e.Line, e.Reason)
	}
	return "malformed DIMACS input: " + e.Reason
}

// Parse reads one DIMACS CNF instance from r and returns it as a
// *cnf.Formula. It stops at the first malformed line.
func Parse(r io.Reader) (*cnf.Formula, error) {
	p := &parser{r: r}
	clauses := p.run(stopAtFirstError)
	if len(p.errs) > 0 {
		return nil, p.errs[0]
	}
	return formulaFromInts(clauses), nil
}

// ParseAll behaves like Parse but keeps scanning past a malformed line
// instead of stopping, and returns every error found together as a single
// *multierror.Error. It is meant for tooling that wants a full diagnostic
// dump of a bad input file rather than the CLI's fail-fast behavior.
func ParseAll(r io.Reader) (*cnf.Formula, error) {
	p := &parser{r: r}
	clauses := p.run(collectAllErrors)
	if len(p.errs) == 0 {
		return formulaFromInts(clauses), nil
	}
	var merr *multierror.Error
	for _, err := range p.errs {
		merr = multierror.Append(merr, err)
	}
	return nil, merr.ErrorOrNil()
}

type errorPolicy bool

const (
	stopAtFirstError errorPolicy = false
	collectAllErrors errorPolicy = true
)

// parser accumulates either the first error (stopAtFirstError) or every
// error (collectAllErrors) found while scanning a DIMACS stream.
type parser struct {
	r              io.Reader
	errs           []error
	problemVars    int
	problemClauses int
	haveProblem    bool
}

func (p *parser) fail(policy errorPolicy, line int, format string, args ...interface{}) bool {
	err := errors.WithStack(&MalformedInput{Line: line, Reason: fmt.Sprintf(format, args...)})
	p.errs = append(p.errs, err)
	return policy == stopAtFirstError // true means "caller should stop now"
}

func (p *parser) run(policy errorPolicy) [][]int {
	var clauses [][]int
	var clause []int

	sawProblemLine := false

	s := bufio.NewScanner(p.r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			sawProblemLine = true
			if p.parseProblemLine(policy, lineNo, line, len(clauses) > 0) {
				return clauses
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				if p.fail(policy, lineNo, "invalid token %q: %s", field, err) {
					return clauses
				}
				continue
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		p.errs = append(p.errs, errors.Wrap(err, "reading DIMACS stream"))
		return clauses
	}
	if !sawProblemLine {
		p.fail(policy, 0, "missing problem line")
	}
	if len(clause) > 0 {
		p.fail(policy, lineNo, "stream ended mid-clause (missing terminating 0)")
	}
	if p.haveProblem && len(clauses) != p.problemClauses {
		p.fail(policy, lineNo, "problem line declares %d clauses, found %d", p.problemClauses, len(clauses))
	}
	if p.haveProblem {
		if extra, ok := firstVarExceedingDeclared(clauses, p.problemVars); ok {
			p.fail(policy, lineNo, "formula references var %d, but problem line declares only %d vars", extra, p.problemVars)
		}
	}
	return clauses
}

// firstVarExceedingDeclared reports a variable appearing in clauses whose
// magnitude exceeds declaredVars, if any. Declaring more vars than are
// referenced is fine; referencing more than declared is not.
func firstVarExceedingDeclared(clauses [][]int, declaredVars int) (int, bool) {
	for _, clause := range clauses {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > declaredVars {
				return v, true
			}
		}
	}
	return 0, false
}

// parseProblemLine parses a 'p cnf n m' line. It returns true when the
// caller (run) should stop scanning immediately, which only ever happens
// under the fail-fast policy.
func (p *parser) parseProblemLine(policy errorPolicy, lineNo int, line string, afterClauses bool) bool {
	if afterClauses {
		if p.fail(policy, lineNo, "problem line appears after clauses") {
			return true
		}
	}
	if p.haveProblem {
		if p.fail(policy, lineNo, "multiple problem lines") {
			return true
		}
	}
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
		return p.fail(policy, lineNo, "malformed problem line %q", line)
	}
	vars, err := strconv.Atoi(fields[2])
	if err != nil {
		if p.fail(policy, lineNo, "malformed #vars in problem line: %s", err) {
			return true
		}
	}
	clauseCount, err := strconv.Atoi(fields[3])
	if err != nil {
		if p.fail(policy, lineNo, "malformed #clauses in problem line: %s", err) {
			return true
		}
	}
	p.problemVars = vars
	p.problemClauses = clauseCount
	p.haveProblem = true
	return false
}

func formulaFromInts(clauses [][]int) *cnf.Formula {
	out := make([]cnf.Clause, len(clauses))
	for i, ints := range clauses {
		out[i] = make(cnf.Clause, len(ints))
		for j, v := range ints {
			name := strconv.Itoa(v)
			if v < 0 {
				name = strconv.Itoa(-v)
			}
			out[i][j] = cnf.NewLiteral(name, v > 0)
		}
	}
	return cnf.NewFormula(out)
}

// Write renders f back into DIMACS CNF text: a problem line declaring the
// variable and clause counts, followed by one line per clause, each
// terminated by a literal 0. Variable names must be the decimal string
// form of a nonzero integer (the form Parse produces); Write returns an
// error otherwise.
func Write(w io.Writer, f *cnf.Formula) error {
	names := f.VariableNames()
	numVars := 0
	for _, name := range names {
		n, err := strconv.Atoi(name)
		if err != nil {
			return errors.Wrapf(err, "variable name %q is not an integer DIMACS identifier", name)
		}
		if n == 0 {
			return errors.Errorf("variable name %q is not a nonzero DIMACS identifier", name)
		}
		if n < 0 {
			n = -n
		}
		if n > numVars {
			numVars = n
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", numVars, len(f.Clauses)); err != nil {
		return err
	}
	for _, clause := range f.Clauses {
		parts := make([]string, 0, len(clause)+1)
		for _, lit := range clause {
			if lit.Positive {
				parts = append(parts, lit.Name)
			} else {
				parts = append(parts, "-"+lit.Name)
			}
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

// SortedNames returns f's variable names ordered the way package result
// orders them for SAT output: numerically when every name is entirely
// digits, lexicographically otherwise.
func SortedNames(f *cnf.Formula) []string {
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
