package csp

import "fmt"

// equality implements Equality(a, b): "A and B name the same row" (§4.3.1).
type equality struct{ a, b string }

// NewEquality builds a constraint asserting variables a and b name the same
// row.
func NewEquality(a, b string) Constraint { return &equality{a: a, b: b} }

func (c *equality) propagate(p *Puzzle) (bool, error) {
	va, err := p.GetVariable(c.a)
	if err != nil {
		return false, err
	}
	vb, err := p.GetVariable(c.b)
	if err != nil {
		return false, err
	}
	return enforceEquality(va, vb)
}

// enforceEquality intersects both domains to dom(a) ∩ dom(b), reporting a
// Contradiction if the intersection is empty. Shared by EitherOr when it
// collapses to a single surviving alternative.
func enforceEquality(a, b *Variable) (bool, error) {
	inter := a.dom.intersect(b.dom)
	if inter.count() == 0 {
		return false, newContradiction("%s and %s have no common row", a.Name, b.Name)
	}
	changedA, err := a.Intersect(inter)
	if err != nil {
		return false, err
	}
	changedB, err := b.Intersect(inter)
	if err != nil {
		return false, err
	}
	return changedA || changedB, nil
}

// inequality implements Inequality(a, b): "A and B name different rows"
// (§4.3.2). This is arc-consistency for ≠ only: it prunes when one side is
// a singleton, not via full mutual exclusion.
type inequality struct{ a, b string }

// NewInequality builds a constraint asserting variables a and b name
// different rows.
func NewInequality(a, b string) Constraint { return &inequality{a: a, b: b} }

func (c *inequality) propagate(p *Puzzle) (bool, error) {
	va, err := p.GetVariable(c.a)
	if err != nil {
		return false, err
	}
	vb, err := p.GetVariable(c.b)
	if err != nil {
		return false, err
	}

	changed := false
	if va.IsAssigned() {
		v, _ := va.AssignedValue()
		ch, err := vb.Remove(v)
		if err != nil {
			return false, err
		}
		changed = changed || ch
	}
	if vb.IsAssigned() {
		v, _ := vb.AssignedValue()
		ch, err := va.Remove(v)
		if err != nil {
			return false, err
		}
		changed = changed || ch
	}
	return changed, nil
}

// allDifferent implements AllDifferent([v1..vk]) (§4.3.3): for each
// assigned value among the listed variables, remove it from the domains of
// the others. This is simple Ford-style propagation, not full Régin
// bipartite-matching filtering — matching spec.md's explicit choice.
type allDifferent struct{ names []string }

func newAllDifferent(names []string) Constraint {
	cp := make([]string, len(names))
	copy(cp, names)
	return &allDifferent{names: cp}
}

// NewAllDifferent builds a constraint asserting every listed variable names
// a distinct row.
func NewAllDifferent(names []string) Constraint { return newAllDifferent(names) }

func (c *allDifferent) propagate(p *Puzzle) (bool, error) {
	vars := make([]*Variable, len(c.names))
	for i, name := range c.names {
		v, err := p.GetVariable(name)
		if err != nil {
			return false, err
		}
		vars[i] = v
	}

	assignedBy := make(map[int]string)
	for _, v := range vars {
		if !v.IsAssigned() {
			continue
		}
		val, _ := v.AssignedValue()
		if owner, dup := assignedBy[val]; dup {
			return false, newContradiction("%s and %s are both assigned row %d", owner, v.Name, val)
		}
		assignedBy[val] = v.Name
	}

	changed := false
	for val, owner := range assignedBy {
		for _, v := range vars {
			if v.Name == owner {
				continue
			}
			ch, err := v.Remove(val)
			if err != nil {
				return false, err
			}
			changed = changed || ch
		}
	}
	return changed, nil
}

// Pair names one equality asserted by an EitherOr alternative: "x and y
// name the same row."
type Pair struct{ X, Y string }

// eitherOr implements EitherOr(alternatives) (§4.3.4): an exclusive choice
// among alternatives, each a list of simultaneous equalities.
//
// Feasibility is checked per-pair (each pair's domain intersection must be
// non-empty), not by jointly enforcing every pair of an alternative on a
// clone. spec.md documents this as an open question: a stricter propagator
// could tentatively enforce a whole alternative and discard it on
// contradiction, catching cases where pairs are individually feasible but
// not simultaneously so. This implementation takes the reference
// (per-pair) choice; the README scenario (§8 S6) is insensitive to it.
type eitherOr struct{ alternatives [][]Pair }

// NewEitherOr builds an exclusive-choice constraint over alternatives, each
// a list of pairs whose intended meaning is "all these equalities hold
// simultaneously." It fails with ErrInvalidArgument if alternatives is
// empty.
func NewEitherOr(alternatives [][]Pair) (Constraint, error) {
	if len(alternatives) == 0 {
		return nil, fmt.Errorf("%w: EitherOr requires at least one alternative", ErrInvalidArgument)
	}
	return &eitherOr{alternatives: alternatives}, nil
}

func (c *eitherOr) propagate(p *Puzzle) (bool, error) {
	feasible := make([]int, 0, len(c.alternatives))
	for i, alt := range c.alternatives {
		ok, err := c.alternativeFeasible(p, alt)
		if err != nil {
			return false, err
		}
		if ok {
			feasible = append(feasible, i)
		}
	}
	if len(feasible) == 0 {
		return false, newContradiction("no EitherOr alternative remains feasible")
	}
	if len(feasible) > 1 {
		return false, nil
	}

	changed := false
	for _, pair := range c.alternatives[feasible[0]] {
		va, err := p.GetVariable(pair.X)
		if err != nil {
			return false, err
		}
		vb, err := p.GetVariable(pair.Y)
		if err != nil {
			return false, err
		}
		ch, err := enforceEquality(va, vb)
		if err != nil {
			return false, err
		}
		changed = changed || ch
	}
	return changed, nil
}

func (c *eitherOr) alternativeFeasible(p *Puzzle, alt []Pair) (bool, error) {
	for _, pair := range alt {
		va, err := p.GetVariable(pair.X)
		if err != nil {
			return false, err
		}
		vb, err := p.GetVariable(pair.Y)
		if err != nil {
			return false, err
		}
		if va.dom.intersect(vb.dom).count() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// rankGreater implements RankGreater(left, right, category) (§4.3.5):
// "rank of left in category exceeds rank of right."
type rankGreater struct {
	left, right, category string
}

// NewRankGreater builds a constraint asserting that left's rank within
// category is greater than right's rank within category.
func NewRankGreater(left, right, category string) Constraint {
	return &rankGreater{left: left, right: right, category: category}
}

func (c *rankGreater) propagate(p *Puzzle) (bool, error) {
	return pruneByRankPredicate(p, c.left, c.right, c.category, func(a, b int) bool { return a > b })
}

// rankExactDiff implements RankExactDiff(left, right, category, d)
// (§4.3.6): "rank(left) - rank(right) = d". Both sides are pruned with
// independently recomputed rank-possibility lists — the corrected form of
// the reference implementation, which reuses a stale local from the first
// pruning pass for its second pass's emptiness check (spec.md's documented
// Open Question).
type rankExactDiff struct {
	left, right, category string
	d                      int
}

// NewRankExactDiff builds a constraint asserting rank(left) - rank(right)
// == d within category. d may be negative.
func NewRankExactDiff(left, right, category string, d int) Constraint {
	return &rankExactDiff{left: left, right: right, category: category, d: d}
}

func (c *rankExactDiff) propagate(p *Puzzle) (bool, error) {
	return pruneByRankPredicate(p, c.left, c.right, c.category, func(a, b int) bool { return a-b == c.d })
}

// pruneByRankPredicate shares the pruning shape of RankGreater and
// RankExactDiff (§4.3.5/4.3.6): keep row i in dom(left) iff some row j in
// dom(right) has ranks a ∈ RP(i), b ∈ RP(j) satisfying pred(a, b), and
// symmetrically for right. Rows with no possible rank (RP(·) empty) are
// always pruned.
func pruneByRankPredicate(p *Puzzle, left, right, category string, pred func(a, b int) bool) (bool, error) {
	vleft, err := p.GetVariable(left)
	if err != nil {
		return false, err
	}
	vright, err := p.GetVariable(right)
	if err != nil {
		return false, err
	}

	leftRows := vleft.Domain()
	rightRows := vright.Domain()

	rpLeft := make(map[int][]int, len(leftRows))
	for _, row := range leftRows {
		ranks, err := p.RanksPossibleForRow(category, row)
		if err != nil {
			return false, err
		}
		rpLeft[row] = ranks
	}
	rpRight := make(map[int][]int, len(rightRows))
	for _, row := range rightRows {
		ranks, err := p.RanksPossibleForRow(category, row)
		if err != nil {
			return false, err
		}
		rpRight[row] = ranks
	}

	keepLeft := make([]int, 0, len(leftRows))
	for _, i := range leftRows {
		if rankCompatible(rpLeft[i], rightRows, rpRight, pred) {
			keepLeft = append(keepLeft, i)
		}
	}
	keepRight := make([]int, 0, len(rightRows))
	for _, j := range rightRows {
		if rankCompatibleReverse(rpRight[j], leftRows, rpLeft, pred) {
			keepRight = append(keepRight, j)
		}
	}

	changedLeft, err := vleft.Intersect(fromValues(p.N, keepLeft))
	if err != nil {
		return false, err
	}
	changedRight, err := vright.Intersect(fromValues(p.N, keepRight))
	if err != nil {
		return false, err
	}
	return changedLeft || changedRight, nil
}

// rankCompatible reports whether some a in ranksI and some b in the
// rank-possibility list of some row j in rowsJ satisfy pred(a, b).
func rankCompatible(ranksI []int, rowsJ []int, rpJ map[int][]int, pred func(a, b int) bool) bool {
	if len(ranksI) == 0 {
		return false
	}
	for _, j := range rowsJ {
		for _, b := range rpJ[j] {
			for _, a := range ranksI {
				if pred(a, b) {
					return true
				}
			}
		}
	}
	return false
}

// rankCompatibleReverse is rankCompatible with the predicate's operands
// swapped to the other side's perspective: some a in the rank-possibility
// list of some row i in rowsI and some b in ranksJ satisfy pred(a, b).
func rankCompatibleReverse(ranksJ []int, rowsI []int, rpI map[int][]int, pred func(a, b int) bool) bool {
	if len(ranksJ) == 0 {
		return false
	}
	for _, i := range rowsI {
		for _, a := range rpI[i] {
			for _, b := range ranksJ {
				if pred(a, b) {
					return true
				}
			}
		}
	}
	return false
}
