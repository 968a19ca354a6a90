package csp

import (
	"fmt"
	"sort"
)

// CategoryAssignment names the variable holding a given category's value
// at a particular row.
type CategoryAssignment struct {
	Tag      string
	Variable string
}

// Row is one line of the solved grid: every category's assigned variable,
// sorted lexicographically by tag (§4.5 "categories sorted within each
// row") so output is stable regardless of map iteration order.
type Row []CategoryAssignment

// Solution is a row-indexed mapping row → (category tag → variable name),
// the external result of Solve (§6).
type Solution []Row

// project converts a fully assigned puzzle into a Solution. Every
// variable must be assigned; callers only reach this after
// selectBranchVariable reports complete.
func project(p *Puzzle) (Solution, error) {
	sol := make(Solution, p.N)
	for i := range sol {
		sol[i] = make(Row, 0, len(p.categoryOrd))
	}

	for name, v := range p.variables {
		row, err := v.AssignedValue()
		if err != nil {
			return nil, err
		}
		tag, err := categoryTag(name)
		if err != nil {
			return nil, err
		}
		sol[row] = append(sol[row], CategoryAssignment{Tag: tag, Variable: name})
	}

	for i := range sol {
		sort.Slice(sol[i], func(a, b int) bool { return sol[i][a].Tag < sol[i][b].Tag })
	}
	return sol, nil
}

// categoryTag recovers a variable's category tag by stripping the trailing
// decimal digits of its name (§4.5, §6 "trailing-digits split"). The
// reference implementation also carries a second, unused projector variant
// with an incorrect trailing-digits regex (spec.md §9 "Dead code in the
// source"); there is no analogous dead code here — this is the one
// correct implementation.
func categoryTag(name string) (string, error) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(name) {
		return "", fmt.Errorf("%w: variable name %q has no <tag><rank> split", ErrInternal, name)
	}
	return name[:i], nil
}
