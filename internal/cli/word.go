package cli

import (
	"strconv"
	"strings"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/errors"
)

// parseGenerators parses a comma- or space-separated list of signed
// generator indices, e.g. "1,-2,1" or "1 -2 1". An empty string is a
// valid empty word.
func parseGenerators(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	gens := make([]int, 0, len(fields))
	for _, f := range fields {
		g, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidWord,
				"invalid generator %q (expected signed integers like 1,-2,1)", f)
		}
		gens = append(gens, g)
	}
	return gens, nil
}

// parseWord builds a braid word from a generator list string. When
// strands is 0, the strand count is inferred as the smallest braid
// group containing the word.
func parseWord(s string, strands int) (*braid.Word, error) {
	gens, err := parseGenerators(s)
	if err != nil {
		return nil, err
	}
	if strands == 0 {
		strands = inferStrands(gens)
	}
	return braid.New(strands, gens...)
}

// inferStrands returns the smallest valid strand count for gens.
func inferStrands(gens []int) int {
	strands := braid.MinStrands
	for _, g := range gens {
		mag := g
		if mag < 0 {
			mag = -mag
		}
		if mag+1 > strands {
			strands = mag + 1
		}
	}
	return strands
}
