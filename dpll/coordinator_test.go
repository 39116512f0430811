package dpll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSolveParallelAgreesWithSequentialSat(t *testing.T) {
	clauses := randomSatisfiable3SAT(7, 12, 40)
	f := formulaFromInts(clauses)
	seq := Solve(f.Clone())

	result := SolveParallel(context.Background(), f, 4, nil)
	require.Equal(t, seq.Sat, result.Sat)
	require.True(t, result.Sat)
	requireSatisfiesAll(t, clauses, result.Model)
}

func TestSolveParallelAgreesWithSequentialUnsat(t *testing.T) {
	// Pigeonhole PHP(3,2), same encoding as the sequential engine's test.
	var clauses [][]int
	for p := 1; p <= 3; p++ {
		clauses = append(clauses, []int{10*p + 1, 10*p + 2})
	}
	for h := 1; h <= 2; h++ {
		for p1 := 1; p1 <= 3; p1++ {
			for p2 := p1 + 1; p2 <= 3; p2++ {
				clauses = append(clauses, []int{-(10*p1 + h), -(10*p2 + h)})
			}
		}
	}
	f := formulaFromInts(clauses)
	seq := Solve(f.Clone())

	result := SolveParallel(context.Background(), f, 4, nil)
	require.Equal(t, seq.Sat, result.Sat)
	require.False(t, result.Sat)
}

func TestSolveParallelDefaultsWorkerCount(t *testing.T) {
	f := formulaFromInts([][]int{{1}})
	result := SolveParallel(context.Background(), f, 0, nil)
	require.True(t, result.Sat)
}

func TestSolveParallelHonorsContextCancellation(t *testing.T) {
	// A small but nontrivial UNSAT instance; cancel almost immediately and
	// require the call returns within a bounded time instead of running
	// the whole search to completion.
	var clauses [][]int
	for p := 1; p <= 4; p++ {
		clauses = append(clauses, []int{10*p + 1, 10*p + 2, 10*p + 3})
	}
	for h := 1; h <= 3; h++ {
		for p1 := 1; p1 <= 4; p1++ {
			for p2 := p1 + 1; p2 <= 4; p2++ {
				clauses = append(clauses, []int{-(10*p1 + h), -(10*p2 + h)})
			}
		}
	}
	f := formulaFromInts(clauses)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		SolveParallel(ctx, f, 2, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("SolveParallel did not return within a bounded time after context cancellation")
	}
}
