// Package csp implements a constraint-satisfaction engine for logic-grid
// puzzles: a set of categories, each contributing N variables whose domains
// are row indices 0..N-1, narrowed by a small vocabulary of propagators
// until a backtracking search finds a complete assignment.
package csp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the programming-error taxonomy (§7). These always
// indicate a caller bug and are never swallowed by the Solver.
var (
	ErrUnknownVariable  = errors.New("csp: unknown variable")
	ErrUnknownCategory  = errors.New("csp: unknown category")
	ErrDuplicateCategory = errors.New("csp: duplicate category")
	ErrNotAssigned      = errors.New("csp: variable is not assigned")
	ErrNotInDomain      = errors.New("csp: value not in domain")
	ErrInvalidArgument  = errors.New("csp: invalid argument")
	ErrInternal         = errors.New("csp: internal invariant violated")

	// ErrUnsolvable is returned by Solve when the puzzle's constraints
	// admit no complete assignment. It is the "unsolvable" result named
	// throughout §4.4 and §7 — distinct from the recoverable Contradiction
	// a single branch hits along the way.
	ErrUnsolvable = errors.New("csp: puzzle has no solution")
)

// Contradiction is the one recoverable error kind: a propagator would empty
// a domain, an EitherOr alternative set lost all feasible alternatives, or
// two AllDifferent members were assigned the same row. The Solver recovers
// it at the nearest branching frame; at the root it becomes Unsolvable.
type Contradiction struct {
	reason string
}

func newContradiction(format string, args ...any) *Contradiction {
	return &Contradiction{reason: fmt.Sprintf(format, args...)}
}

func (c *Contradiction) Error() string {
	return "csp: contradiction: " + c.reason
}

// IsContradiction reports whether err is (or wraps) a Contradiction.
func IsContradiction(err error) bool {
	var c *Contradiction
	return errors.As(err, &c)
}
