package csp

import "math/bits"

// domain is a bitset over row indices 0..n-1. It is the concrete
// representation backing Variable; row indices are small non-negative
// integers bounded by N; a single-word bitset covers the typical puzzle
// size and makes intersection, membership, and cardinality queries
// constant-time, following the teacher's BitSetDomain layout
// (pkg/minikanren/domain.go) one word per 64 values.
type domain struct {
	words []uint64
	n     int // row cardinality; valid rows are 0..n-1
}

func wordsFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 63) / 64
}

// fullDomain returns a domain containing every row 0..n-1.
func fullDomain(n int) domain {
	d := domain{words: make([]uint64, wordsFor(n)), n: n}
	for i := 0; i < n; i++ {
		d.set(i)
	}
	return d
}

// singletonDomain returns a domain containing only row v.
func singletonDomain(n, v int) domain {
	d := domain{words: make([]uint64, wordsFor(n)), n: n}
	d.set(v)
	return d
}

// emptyDomain returns a domain with no rows set, sized for n.
func emptyDomain(n int) domain {
	return domain{words: make([]uint64, wordsFor(n)), n: n}
}

func (d *domain) set(v int)   { d.words[v/64] |= 1 << uint(v%64) }
func (d *domain) clear(v int) { d.words[v/64] &^= 1 << uint(v%64) }

// has reports whether row v is present in the domain.
func (d domain) has(v int) bool {
	if v < 0 || v >= d.n {
		return false
	}
	return d.words[v/64]&(1<<uint(v%64)) != 0
}

// count returns the number of rows present.
func (d domain) count() int {
	total := 0
	for _, w := range d.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// isSingleton reports whether exactly one row is present.
func (d domain) isSingleton() bool { return d.count() == 1 }

// singleValue returns the sole row present. Behavior is undefined if the
// domain is not a singleton; callers must check isSingleton first.
func (d domain) singleValue() int {
	for i, w := range d.words {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
	}
	return -1
}

// values returns the rows present, in ascending order.
func (d domain) values() []int {
	out := make([]int, 0, d.count())
	for i, w := range d.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, i*64+b)
			w &^= 1 << uint(b)
		}
	}
	return out
}

// clone returns a copy of the domain.
func (d domain) clone() domain {
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return domain{words: words, n: d.n}
}

// intersect returns d ∩ other.
func (d domain) intersect(other domain) domain {
	words := make([]uint64, len(d.words))
	for i := range words {
		words[i] = d.words[i] & other.words[i]
	}
	return domain{words: words, n: d.n}
}

// equal reports whether d and other contain exactly the same rows.
func (d domain) equal(other domain) bool {
	for i := range d.words {
		if d.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// fromValues builds a domain containing exactly the given rows (duplicates
// and out-of-range values are ignored).
func fromValues(n int, vs []int) domain {
	d := emptyDomain(n)
	for _, v := range vs {
		if v >= 0 && v < n {
			d.set(v)
		}
	}
	return d
}
