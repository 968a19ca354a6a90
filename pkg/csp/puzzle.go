package csp

import (
	"fmt"
	"sort"
)

// Constraint is the single capability every propagator exposes: prune
// domains in place against the puzzle and report whether anything
// changed. Implementations hold only variable names and constants, never
// a reference into a specific Puzzle, so the same Constraint value is
// safe to share across cloned puzzles (§3 "Constraint").
type Constraint interface {
	propagate(p *Puzzle) (bool, error)
}

// Puzzle is a container of variables grouped by category plus an ordered
// list of constraints. It is mutable during setup (category/constraint
// additions) and during solving (domain narrowing); the Solver never
// mutates a caller's Puzzle directly while branching — it mutates private
// clones (§3 "Lifecycle").
type Puzzle struct {
	N           int
	variables   map[string]*Variable
	categories  map[string][]string // tag -> ordered variable names, tag1..tagN
	categoryOrd []string             // insertion order, for deterministic Clone/iteration
	constraints []Constraint
}

// NewPuzzle constructs an empty puzzle with row cardinality n. It fails
// with ErrInvalidArgument if n < 2 (§6).
func NewPuzzle(n int) (*Puzzle, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: N must be >= 2, got %d", ErrInvalidArgument, n)
	}
	return &Puzzle{
		N:          n,
		variables:  make(map[string]*Variable),
		categories: make(map[string][]string),
	}, nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// AddCategory creates tag1..tagN with full domain 0..N-1 and registers the
// implicit all-different constraint that makes the category's variables a
// permutation of 0..N-1 in any solution (§3 "Category"). It fails with
// ErrInvalidArgument if tag is not alphabetic, or ErrDuplicateCategory if
// tag was already registered.
func (p *Puzzle) AddCategory(tag string) error {
	if !isAlpha(tag) {
		return fmt.Errorf("%w: category tag %q must match [A-Za-z]+", ErrInvalidArgument, tag)
	}
	if _, exists := p.categories[tag]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, tag)
	}

	names := make([]string, p.N)
	for k := 1; k <= p.N; k++ {
		name := fmt.Sprintf("%s%d", tag, k)
		p.variables[name] = newVariable(name, p.N)
		names[k-1] = name
	}
	p.categories[tag] = names
	p.categoryOrd = append(p.categoryOrd, tag)
	p.constraints = append(p.constraints, newAllDifferent(names))
	return nil
}

// GetVariable returns the named variable. It fails with ErrUnknownVariable
// if name was never declared by AddCategory.
func (p *Puzzle) GetVariable(name string) (*Variable, error) {
	v, ok := p.variables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return v, nil
}

// AddConstraint appends c to the constraint list. Ordering is preserved
// but not semantically significant (§4.2), except that it determines the
// reproducible order in which propagation iterates (§5).
func (p *Puzzle) AddConstraint(c Constraint) {
	p.constraints = append(p.constraints, c)
}

// RanksPossibleForRow returns the ranks k for which variable <category><k>
// still has row in its domain, sorted ascending. It fails with
// ErrUnknownCategory if category was never declared.
func (p *Puzzle) RanksPossibleForRow(category string, row int) ([]int, error) {
	names, ok := p.categories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	var ranks []int
	for k, name := range names {
		if p.variables[name].dom.has(row) {
			ranks = append(ranks, k+1)
		}
	}
	return ranks, nil
}

// Clone deep-copies every variable's domain; constraints are immutable and
// are shared by reference across the copy (§4.2 "clone (deep)").
func (p *Puzzle) Clone() *Puzzle {
	clone := &Puzzle{
		N:           p.N,
		variables:   make(map[string]*Variable, len(p.variables)),
		categories:  p.categories, // immutable after setup; safe to share
		categoryOrd: p.categoryOrd,
		constraints: p.constraints, // immutable; safe to share
	}
	for name, v := range p.variables {
		clone.variables[name] = v.clone()
	}
	return clone
}

// variableNames returns every variable name in deterministic order
// (category declaration order, then rank), used by the solver's MRV scan.
func (p *Puzzle) variableNames() []string {
	names := make([]string, 0, len(p.variables))
	for _, tag := range p.categoryOrd {
		names = append(names, p.categories[tag]...)
	}
	if len(names) != len(p.variables) {
		// Variables declared outside AddCategory (shouldn't happen through
		// the public API, but keep deterministic output if it ever does).
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			seen[n] = true
		}
		extra := make([]string, 0)
		for n := range p.variables {
			if !seen[n] {
				extra = append(extra, n)
			}
		}
		sort.Strings(extra)
		names = append(names, extra...)
	}
	return names
}
