package csp

import "fmt"

// Variable is a named unknown whose domain is a subset of row indices
// 0..N-1. Its invariants (§3): the domain is never empty — the moment a
// removal would empty it, the mutator reports a Contradiction instead —
// and it is always a subset of 0..N-1. A Variable is exclusively owned by
// the Puzzle that created it; propagators mutate it only through the
// methods below.
type Variable struct {
	Name string
	dom  domain
}

func newVariable(name string, n int) *Variable {
	return &Variable{Name: name, dom: fullDomain(n)}
}

// IsAssigned reports whether the domain has collapsed to a single row.
func (v *Variable) IsAssigned() bool {
	return v.dom.isSingleton()
}

// AssignedValue returns the sole remaining row. It fails with
// ErrNotAssigned if the domain does not currently hold exactly one value —
// reaching that case during normal solving indicates an internal bug, not
// recoverable control flow.
func (v *Variable) AssignedValue() (int, error) {
	if !v.dom.isSingleton() {
		return 0, fmt.Errorf("%w: %s has %d candidates", ErrNotAssigned, v.Name, v.dom.count())
	}
	return v.dom.singleValue(), nil
}

// Domain returns the rows still in the variable's domain, in ascending
// order. The slice is a fresh copy; callers may not mutate the variable by
// mutating it.
func (v *Variable) Domain() []int {
	return v.dom.values()
}

// Assign narrows the domain to exactly {value}. It fails with
// ErrNotInDomain if value is not currently a candidate — an internal bug
// if reached during normal solving (the Solver only ever assigns values it
// read from the domain moments before).
func (v *Variable) Assign(value int) error {
	if !v.dom.has(value) {
		return fmt.Errorf("%w: %s cannot be assigned %d", ErrNotInDomain, v.Name, value)
	}
	v.dom = singletonDomain(v.dom.n, value)
	return nil
}

// Remove deletes value from the domain if present. It returns whether a
// change occurred, and fails with a Contradiction if the removal would
// leave the domain empty (domain wipeout, §8 "Domain wipeout").
func (v *Variable) Remove(value int) (bool, error) {
	if !v.dom.has(value) {
		return false, nil
	}
	if v.dom.count() == 1 {
		return false, newContradiction("removing %d from %s would empty its domain", value, v.Name)
	}
	v.dom.clear(value)
	return true, nil
}

// Intersect replaces the domain with domain ∩ values. It returns whether a
// change occurred, and fails with a Contradiction if the result is empty.
func (v *Variable) Intersect(values domain) (bool, error) {
	newDom := v.dom.intersect(values)
	if newDom.equal(v.dom) {
		return false, nil
	}
	if newDom.count() == 0 {
		return false, newContradiction("%s has no remaining candidates", v.Name)
	}
	v.dom = newDom
	return true, nil
}

func (v *Variable) clone() *Variable {
	return &Variable{Name: v.Name, dom: v.dom.clone()}
}
