// Package perm tracks strand positions through a braid word.
//
// A row is a snapshot of the braid at one time step: a slice of length n
// where row[slot] is the identity of the strand occupying that horizontal
// slot. Row 0 is always the identity assignment (strand i in slot i) and
// each generator swaps the two slots it touches, producing the next row.
//
// [Rows] is a pure function of the word: it recomputes fresh slices on
// every call, so repeated calls are independent and a word may be
// inspected concurrently. The package also provides the small permutation
// algebra ([Identity], [Transposition], [Compose]) used to cross-check
// the row simulation.
package perm

import "github.com/strandlab/braidviz/pkg/braid"

// Identity returns the identity assignment [0, 1, ..., n-1].
// For n <= 0, Identity returns an empty slice.
func Identity(n int) []int {
	row := make([]int, max(n, 0))
	for i := range row {
		row[i] = i
	}
	return row
}

// Transposition returns the permutation of [0..n-1] that swaps slots
// s and s+1 and fixes everything else.
func Transposition(n, s int) []int {
	p := Identity(n)
	p[s], p[s+1] = p[s+1], p[s]
	return p
}

// Compose applies q's slot mapping to p: the result r satisfies
// r[i] = p[q[i]]. Composing a row with a [Transposition] reproduces one
// simulation step of [Rows].
func Compose(p, q []int) []int {
	r := make([]int, len(q))
	for i, j := range q {
		r[i] = p[j]
	}
	return r
}

// IsPermutation reports whether p is a bijection on {0..len(p)-1}:
// every value in range and none repeated.
func IsPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Rows simulates the word and returns all w.Len()+1 slot assignments:
// row 0 (identity) through the final state. Each row is a fresh slice.
func Rows(w *braid.Word) [][]int {
	n := w.Strands()
	rows := make([][]int, 0, w.Len()+1)
	curr := Identity(n)
	rows = append(rows, curr)

	for _, g := range w.Generators() {
		s := abs(g) - 1
		next := make([]int, n)
		copy(next, curr)
		next[s], next[s+1] = next[s+1], next[s]
		rows = append(rows, next)
		curr = next
	}
	return rows
}

// Final returns the slot assignment after the whole word has been
// applied: Final(w)[slot] is the strand ending up in that slot.
func Final(w *braid.Word) []int {
	rows := Rows(w)
	return rows[len(rows)-1]
}

// Undercrossings returns, per generator, the identity of the strand that
// passes behind at that crossing. With a positive generator the strand
// entering from the left slot goes in front, so the right slot's strand
// is the undercrosser; a negative generator flips that.
func Undercrossings(w *braid.Word) []int {
	rows := Rows(w)
	under := make([]int, 0, w.Len())
	for k, g := range w.Generators() {
		s := abs(g) - 1
		if g > 0 {
			under = append(under, rows[k][s+1])
		} else {
			under = append(under, rows[k][s])
		}
	}
	return under
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
