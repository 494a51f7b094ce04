package braid

import (
	"fmt"
	"slices"
	"strings"

	"github.com/strandlab/braidviz/pkg/errors"
)

// MinStrands is the smallest braid group with a crossing to draw.
const MinStrands = 2

// Word is a braid word: a fixed strand count plus an ordered sequence of
// signed Artin generators. The zero value is not usable; construct with
// [New]. Apart from [Word.Append], a Word never changes after construction.
type Word struct {
	strands int
	gens    []int
}

// New constructs a Word on the given number of strands from an optional
// initial generator sequence.
//
// It returns an INVALID_WORD error if strands < 2, and an
// INVALID_GENERATOR error if any generator is zero or its magnitude
// exceeds strands-1. Validation happens here, never at layout or render
// time, so a constructed Word is always drawable.
func New(strands int, gens ...int) (*Word, error) {
	if strands < MinStrands {
		return nil, errors.New(errors.ErrCodeInvalidWord,
			"strand count must be at least %d, got %d", MinStrands, strands)
	}
	w := &Word{strands: strands}
	if err := w.Append(gens...); err != nil {
		return nil, err
	}
	return w, nil
}

// Append adds one or more generators to the end of the word, validating
// each against the fixed strand count. On error nothing is appended.
//
// Append is the sole mutation a Word supports. Concurrent appends to the
// same Word must be serialized by the caller.
func (w *Word) Append(gens ...int) error {
	for _, g := range gens {
		if err := w.checkGenerator(g); err != nil {
			return err
		}
	}
	w.gens = append(w.gens, gens...)
	return nil
}

// checkGenerator validates a single generator against the strand count.
func (w *Word) checkGenerator(g int) error {
	if g == 0 {
		return errors.New(errors.ErrCodeInvalidGenerator,
			"generator cannot be zero (valid magnitudes are 1..%d)", w.strands-1)
	}
	if abs(g) > w.strands-1 {
		return errors.New(errors.ErrCodeInvalidGenerator,
			"generator %d out of range for %d strands (valid magnitudes are 1..%d)",
			g, w.strands, w.strands-1)
	}
	return nil
}

// Strands returns the number of strands in the braid group.
func (w *Word) Strands() int { return w.strands }

// Len returns the number of generators, which is also the number of
// crossings and the number of diagram rows below the initial state.
func (w *Word) Len() int { return len(w.gens) }

// Generators returns a copy of the generator sequence. Mutating the
// returned slice does not affect the word.
func (w *Word) Generators() []int { return slices.Clone(w.gens) }

// Generator returns the generator at index i (0-based).
// It panics if i is out of range, matching slice semantics.
func (w *Word) Generator(i int) int { return w.gens[i] }

// String renders the word in compact sigma notation, e.g. "s1 s2' s1"
// where a trailing apostrophe marks an inverse generator.
func (w *Word) String() string {
	if len(w.gens) == 0 {
		return fmt.Sprintf("trivial braid on %d strands", w.strands)
	}
	parts := make([]string, len(w.gens))
	for i, g := range w.gens {
		if g > 0 {
			parts[i] = fmt.Sprintf("s%d", g)
		} else {
			parts[i] = fmt.Sprintf("s%d'", -g)
		}
	}
	return strings.Join(parts, " ")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
