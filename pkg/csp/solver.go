package csp

import (
	"context"
	"errors"
)

// Solve runs propagation to fixpoint and, when stalled but incomplete,
// branches over the minimum-remaining-values variable until a complete
// assignment is found or every branch fails (§4.4). It never mutates p; it
// operates on private clones. It returns ErrUnsolvable (not a
// *Contradiction) when no assignment exists — the Contradiction kind is
// strictly an internal recovery signal between branches.
//
// Solve returns the first complete assignment it encounters; it does not
// verify uniqueness. If the clue set is ambiguous, the result depends on
// each variable's domain iteration order (§4.4 "Optimality/uniqueness").
// Use SolveUnique to additionally check for a second solution.
func Solve(p *Puzzle) (Solution, error) {
	return SolveWithDeadline(context.Background(), p)
}

// SolveWithDeadline is Solve with a context checked at the start of every
// search frame, before that frame propagates to fixpoint, per §5's
// allowance for a wrapper to bound wall time. The passes inside one
// frame's propagation do not check the context.
// A context error aborts the whole search — unlike a
// Contradiction, it is not a signal to try the next branch.
func SolveWithDeadline(ctx context.Context, p *Puzzle) (Solution, error) {
	sol, err := solveFrame(ctx, p.Clone())
	if err == nil {
		return sol, nil
	}
	if recoverableFailure(err) {
		return nil, ErrUnsolvable
	}
	return nil, err
}

// recoverableFailure reports whether err signals "this branch failed, try
// the next one" (a Contradiction from propagation, or an already-exhausted
// ErrUnsolvable bubbling up from a deeper frame) as opposed to a
// programming error or a context cancellation, both of which must
// propagate to the caller unchanged (§7).
func recoverableFailure(err error) bool {
	return IsContradiction(err) || errors.Is(err, ErrUnsolvable)
}

// solveFrame implements one recursive frame of §4.4 over a puzzle this
// frame exclusively owns.
func solveFrame(ctx context.Context, p *Puzzle) (Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := propagateToFixpoint(p); err != nil {
		return nil, err
	}

	chosen, complete, err := selectBranchVariable(p)
	if err != nil {
		return nil, err
	}
	if complete {
		return project(p)
	}

	for _, value := range chosen.Domain() {
		clone := p.Clone()
		cv, err := clone.GetVariable(chosen.Name)
		if err != nil {
			return nil, err
		}
		if err := cv.Assign(value); err != nil {
			// value was read from this same clone's domain moments ago;
			// Assign failing here means ErrNotInDomain, an internal bug.
			return nil, err
		}

		sol, err := solveFrame(ctx, clone)
		if err == nil {
			return sol, nil
		}
		if !recoverableFailure(err) {
			return nil, err
		}
	}
	return nil, ErrUnsolvable
}

// propagateToFixpoint repeatedly iterates the constraint list, accumulating
// a changed flag from each propagator, until a full pass produces no
// change (§4.4 step 1, §5 "Ordering guarantees" — insertion order, every
// run).
func propagateToFixpoint(p *Puzzle) error {
	for {
		changed := false
		for _, c := range p.constraints {
			ch, err := c.propagate(p)
			if err != nil {
				return err
			}
			changed = changed || ch
		}
		if !changed {
			return nil
		}
	}
}

// selectBranchVariable implements MRV (§4.4 step 3): the unassigned
// variable with the smallest domain size greater than 1, ties broken by
// insertion order. complete is true when every variable is already
// assigned.
func selectBranchVariable(p *Puzzle) (chosen *Variable, complete bool, err error) {
	var best *Variable
	bestSize := 0
	anyUnassigned := false

	for _, name := range p.variableNames() {
		v := p.variables[name]
		if v.IsAssigned() {
			continue
		}
		anyUnassigned = true
		size := v.dom.count()
		if best == nil || size < bestSize {
			best = v
			bestSize = size
		}
	}

	if !anyUnassigned {
		return nil, true, nil
	}
	if best == nil {
		return nil, false, ErrInternal
	}
	return best, false, nil
}

// SolveUnique behaves like Solve but additionally searches for a second,
// distinct complete assignment, capped at two total — mirroring the
// count-solutions pattern spec.md's Design Notes attribute to the Sudoku
// toy's uniqueness check. It reports whether the first solution found is
// the only one.
func SolveUnique(p *Puzzle) (sol Solution, unique bool, err error) {
	solutions, err := collectSolutions(context.Background(), p, 2)
	if err != nil {
		return nil, false, err
	}
	if len(solutions) == 0 {
		return nil, false, ErrUnsolvable
	}
	return solutions[0], len(solutions) == 1, nil
}

// collectSolutions gathers up to limit complete assignments by exhaustive
// branching, short-circuiting the remaining search the instant limit is
// reached.
func collectSolutions(ctx context.Context, p *Puzzle, limit int) ([]Solution, error) {
	var found []Solution
	var walk func(p *Puzzle) error
	walk = func(p *Puzzle) error {
		if len(found) >= limit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := propagateToFixpoint(p); err != nil {
			if recoverableFailure(err) {
				return nil
			}
			return err
		}

		chosen, complete, err := selectBranchVariable(p)
		if err != nil {
			return err
		}
		if complete {
			sol, err := project(p)
			if err != nil {
				return err
			}
			found = append(found, sol)
			return nil
		}

		for _, value := range chosen.Domain() {
			if len(found) >= limit {
				return nil
			}
			clone := p.Clone()
			cv, err := clone.GetVariable(chosen.Name)
			if err != nil {
				return err
			}
			if err := cv.Assign(value); err != nil {
				return err
			}
			if err := walk(clone); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(p.Clone()); err != nil {
		return nil, err
	}
	return found, nil
}
