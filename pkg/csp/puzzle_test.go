package csp

import (
	"errors"
	"testing"
)

func TestNewPuzzleRejectsSmallN(t *testing.T) {
	if _, err := NewPuzzle(1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestAddCategoryCreatesVariables(t *testing.T) {
	p, err := NewPuzzle(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.AddCategory("A"); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	for _, name := range []string{"A1", "A2", "A3"} {
		v, err := p.GetVariable(name)
		if err != nil {
			t.Fatalf("GetVariable(%q) failed: %v", name, err)
		}
		if v.dom.count() != 3 {
			t.Errorf("%s domain size = %d, want 3", name, v.dom.count())
		}
	}
}

func TestAddCategoryRejectsBadTag(t *testing.T) {
	p, _ := NewPuzzle(3)
	if err := p.AddCategory("A1"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for non-alphabetic tag, got %v", err)
	}
	if err := p.AddCategory(""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty tag, got %v", err)
	}
}

func TestAddCategoryRejectsDuplicate(t *testing.T) {
	p, _ := NewPuzzle(3)
	if err := p.AddCategory("A"); err != nil {
		t.Fatal(err)
	}
	if err := p.AddCategory("A"); !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("expected ErrDuplicateCategory, got %v", err)
	}
}

func TestGetVariableUnknown(t *testing.T) {
	p, _ := NewPuzzle(3)
	if _, err := p.GetVariable("Z9"); !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable, got %v", err)
	}
}

func TestRanksPossibleForRow(t *testing.T) {
	p, _ := NewPuzzle(3)
	if err := p.AddCategory("B"); err != nil {
		t.Fatal(err)
	}
	// Every rank is possible for every row before any narrowing.
	ranks, err := p.RanksPossibleForRow("B", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !sameInts(ranks, []int{1, 2, 3}) {
		t.Errorf("RanksPossibleForRow = %v, want [1 2 3]", ranks)
	}

	b2, _ := p.GetVariable("B2")
	if _, err := b2.Remove(1); err != nil {
		t.Fatal(err)
	}
	ranks, err = p.RanksPossibleForRow("B", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !sameInts(ranks, []int{1, 3}) {
		t.Errorf("RanksPossibleForRow after narrowing = %v, want [1 3]", ranks)
	}
}

func TestRanksPossibleForRowUnknownCategory(t *testing.T) {
	p, _ := NewPuzzle(3)
	if _, err := p.RanksPossibleForRow("Z", 0); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCloneIsolatesDomains(t *testing.T) {
	p, _ := NewPuzzle(3)
	if err := p.AddCategory("A"); err != nil {
		t.Fatal(err)
	}
	clone := p.Clone()

	cv, err := clone.GetVariable("A1")
	if err != nil {
		t.Fatal(err)
	}
	if err := cv.Assign(0); err != nil {
		t.Fatal(err)
	}

	original, err := p.GetVariable("A1")
	if err != nil {
		t.Fatal(err)
	}
	if original.IsAssigned() {
		t.Error("mutating the clone assigned the original (P6 violated)")
	}
}

func TestAddCategoryImplicitAllDifferent(t *testing.T) {
	p, _ := NewPuzzle(2)
	if err := p.AddCategory("A"); err != nil {
		t.Fatal(err)
	}
	if len(p.constraints) != 1 {
		t.Fatalf("expected one implicit constraint, got %d", len(p.constraints))
	}
	a1, _ := p.GetVariable("A1")
	if err := a1.Assign(0); err != nil {
		t.Fatal(err)
	}
	if _, err := p.constraints[0].propagate(p); err != nil {
		t.Fatalf("propagate failed: %v", err)
	}
	a2, _ := p.GetVariable("A2")
	if a2.dom.has(0) {
		t.Error("implicit all-different should have removed 0 from A2's domain")
	}
}
