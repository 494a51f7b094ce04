// Package braid implements the braid word data model.
//
// A braid on n strands is described by a word: an ordered sequence of
// signed Artin generators. Generator g with |g| = i denotes a crossing of
// the strands currently occupying slots i-1 and i (0-indexed horizontal
// positions). The sign fixes the over/under relation.
//
// # Sign Convention
//
// This is the one place the convention is defined; every other package
// follows it. A positive generator means the strand entering from the
// left slot (|g|-1) passes in front of the strand entering from the right
// slot. A negative generator means it passes behind. Diagrams read top to
// bottom: row 0 is the top of the braid and each generator adds one row
// below it.
//
// # Construction
//
//	w, err := braid.New(3, 1, -2, 1)
//
// Words may also be built crossing by crossing:
//
//	w, _ := braid.New(3)
//	err := w.Append(1)
//	err = w.Append(-2, 1)
//
// Append is the only mutation; every generator is validated against the
// fixed strand count at construction or append time, never later. A word
// read concurrently is safe; concurrent appends to the same word must be
// serialized by the caller.
//
// Strand position tracking lives in the perm subpackage, geometry in
// pkg/layout.
package braid
