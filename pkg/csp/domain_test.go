package csp

import "testing"

func TestFullDomain(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"2x2", 2},
		{"5x5", 5},
		{"wide, spans two words", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fullDomain(tt.n)
			if d.count() != tt.n {
				t.Errorf("count() = %d, want %d", d.count(), tt.n)
			}
			for i := 0; i < tt.n; i++ {
				if !d.has(i) {
					t.Errorf("domain should contain %d", i)
				}
			}
			if d.has(tt.n) {
				t.Errorf("domain should not contain %d (out of range)", tt.n)
			}
			if d.has(-1) {
				t.Error("domain should not contain -1")
			}
		})
	}
}

func TestDomainClearAndHas(t *testing.T) {
	d := fullDomain(5)
	d.clear(2)
	if d.has(2) {
		t.Error("expected 2 to be cleared")
	}
	if d.count() != 4 {
		t.Errorf("count() = %d, want 4", d.count())
	}
}

func TestSingletonDomain(t *testing.T) {
	d := singletonDomain(5, 3)
	if !d.isSingleton() {
		t.Fatal("expected singleton")
	}
	if d.singleValue() != 3 {
		t.Errorf("singleValue() = %d, want 3", d.singleValue())
	}
}

func TestDomainIntersect(t *testing.T) {
	a := fromValues(6, []int{0, 1, 2, 3})
	b := fromValues(6, []int{2, 3, 4, 5})
	got := a.intersect(b)
	want := []int{2, 3}
	if !sameInts(got.values(), want) {
		t.Errorf("intersect() = %v, want %v", got.values(), want)
	}
}

func TestDomainEqual(t *testing.T) {
	a := fromValues(4, []int{0, 2})
	b := fromValues(4, []int{0, 2})
	c := fromValues(4, []int{0, 1})
	if !a.equal(b) {
		t.Error("expected a == b")
	}
	if a.equal(c) {
		t.Error("expected a != c")
	}
}

func TestDomainClone(t *testing.T) {
	a := fromValues(4, []int{0, 1})
	b := a.clone()
	b.clear(0)
	if !a.has(0) {
		t.Error("clone mutation should not affect original")
	}
}

func TestFromValuesDedupesAndDropsOutOfRange(t *testing.T) {
	d := fromValues(5, []int{1, 1, 2, -1, 10})
	want := []int{1, 2}
	if !sameInts(d.values(), want) {
		t.Errorf("values() = %v, want %v", d.values(), want)
	}
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
