package cnf

import "testing"

func TestClauseStatus(t *testing.T) {
	store := NewAssignmentStore()
	c := Clause{lit("x", true), lit("y", false)}
	if got := c.Status(store); got != Undetermined {
		t.Fatalf("Status() = %s, want undetermined", got)
	}
	store.Assign("x", true)
	if got := c.Status(store); got != Satisfied {
		t.Fatalf("Status() = %s, want satisfied", got)
	}
	store2 := NewAssignmentStore()
	store2.Assign("x", false)
	store2.Assign("y", true)
	if got := c.Status(store2); got != Falsified {
		t.Fatalf("Status() = %s, want falsified", got)
	}
}

func TestClauseUnitLiteral(t *testing.T) {
	store := NewAssignmentStore()
	c := Clause{lit("x", true), lit("y", false), lit("z", true)}

	if _, ok := c.UnitLiteral(store); ok {
		t.Fatal("no variable assigned yet; should not be unit")
	}

	store.Assign("x", false)
	if _, ok := c.UnitLiteral(store); ok {
		t.Fatal("still two unassigned literals; should not be unit")
	}

	store.Assign("y", true) // makes y's literal (negative) false
	got, ok := c.UnitLiteral(store)
	if !ok {
		t.Fatal("expected a unit literal")
	}
	if got != lit("z", true) {
		t.Fatalf("UnitLiteral() = %v, want z", got)
	}
}

func TestClauseUnitLiteralSatisfiedIsNotUnit(t *testing.T) {
	store := NewAssignmentStore()
	store.Assign("x", true)
	c := Clause{lit("x", true), lit("y", false)}
	if _, ok := c.UnitLiteral(store); ok {
		t.Fatal("a satisfied clause is never unit")
	}
}
