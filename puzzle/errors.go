package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced at the Graph boundary. Predicates and the
// candidate enumerator never fail — they return empty sets, which the
// backtracking driver interprets as "no legal move here". Only Solve
// reports anything to the caller, and only the no-solution case, via a
// boolean/ok return rather than one of these sentinels: a solver running
// out of candidates is an expected outcome, not an error.
var (
	// ErrNoSolution is returned by SolveErr when the search space is
	// exhausted without finding a satisfying assignment. Solve itself
	// reports the same condition via its boolean ok return.
	ErrNoSolution = errors.New("puzzle: no solution")
)

// indexRangePanic reports a programmer error: an out-of-range node index.
// This is a contract violation, not a recoverable error — the core
// asserts rather than threading an error return through every accessor.
func indexRangePanic(i, n int) {
	panic(fmt.Sprintf("puzzle: node index %d out of range [0, %d)", i, n))
}

// selfEdgePanic reports setting a self-edge on a node that forbids one.
func selfEdgePanic(i int) {
	panic(fmt.Sprintf("puzzle: node %d is not self_connected", i))
}

// zeroColorPanic reports Set being asked to assign the reserved EMPTY
// color outside of the backtracker's own reset path.
func zeroColorPanic(i, j int) {
	panic(fmt.Sprintf("puzzle: Set(%d,%d,0) is not a valid external assignment; use the backtracker to reset", i, j))
}
