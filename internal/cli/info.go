package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/braid/perm"
	"github.com/strandlab/braidviz/pkg/braidio"
	"github.com/strandlab/braidviz/pkg/errors"
)

// newInfoCmd creates the info command, which prints the permutation a
// braid word induces without rendering anything.
func newInfoCmd() *cobra.Command {
	var word string
	var strands int

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Print the permutation a braid word induces",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := resolveWord(args, word, strands)
			if err != nil {
				return err
			}
			printWordInfo(w)
			return nil
		},
	}

	cmd.Flags().StringVarP(&word, "word", "w", "", "generator list, e.g. \"1,-2,1\"")
	cmd.Flags().IntVarP(&strands, "strands", "n", 0, "strand count (default: inferred from word)")

	return cmd
}

// resolveWord loads the braid word from a file argument or flags.
func resolveWord(args []string, word string, strands int) (*braid.Word, error) {
	if len(args) == 1 {
		if word != "" {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"pass either --word or a braid file, not both")
		}
		return braidio.ReadFile(args[0])
	}
	return parseWord(word, strands)
}

// printWordInfo prints word statistics and the final slot occupancy.
func printWordInfo(w *braid.Word) {
	printKeyValue("word", w.String())
	printKeyValue("strands", fmt.Sprintf("%d", w.Strands()))
	printKeyValue("length", fmt.Sprintf("%d", w.Len()))

	final := perm.Final(w)
	printKeyValue("permutation", permString(final))

	under := perm.Undercrossings(w)
	if len(under) > 0 {
		labels := make([]string, len(under))
		for i, s := range under {
			labels[i] = fmt.Sprintf("%d", s)
		}
		printKeyValue("under", strings.Join(labels, " "))
	}
}

// permString renders a final row as "slot:strand" pairs, e.g.
// "0→2 1→1 2→0".
func permString(row []int) string {
	pairs := make([]string, len(row))
	for slot, strand := range row {
		pairs[slot] = fmt.Sprintf("%d%s%d", slot, iconArrow, strand)
	}
	return strings.Join(pairs, " ")
}
