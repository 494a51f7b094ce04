package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/braid/perm"
	"github.com/strandlab/braidviz/pkg/braidio"
	"github.com/strandlab/braidviz/pkg/errors"
)

// newTUICmd creates the interactive word builder command.
func newTUICmd() *cobra.Command {
	var strands int
	var output string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Build a braid word interactively",
		Long: `Build a braid word one generator at a time with a live permutation
preview. Type a signed generator index and press enter to append it.
Press s to save the word as braid JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := braid.New(strands)
			if err != nil {
				return err
			}
			model := newBuilderModel(w, output)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(builderModel); ok && m.saved != "" {
				printSuccess("Saved %s", m.saved)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&strands, "strands", "n", 4, "strand count")
	cmd.Flags().StringVarP(&output, "output", "o", "braid.json", "save path for the braid JSON file")

	return cmd
}

// builderModel is the bubbletea model for the interactive word builder.
type builderModel struct {
	word   *braid.Word
	input  string // generator index being typed
	errMsg string
	output string
	saved  string // non-empty once the word has been written
}

func newBuilderModel(w *braid.Word, output string) builderModel {
	return builderModel{word: w, output: output}
}

func (m builderModel) Init() tea.Cmd {
	return nil
}

func (m builderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		m = m.appendInput()

	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		} else {
			m = m.undo()
		}
		m.errMsg = ""

	case "u":
		m = m.undo()

	case "s":
		if err := braidio.WriteFile(m.word, m.output); err != nil {
			m.errMsg = err.Error()
		} else {
			m.saved = m.output
			m.errMsg = ""
		}

	default:
		s := key.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '-' && m.input == "") {
			m.input += s
			m.errMsg = ""
		}
	}
	return m, nil
}

// appendInput parses the typed index and appends it to the word.
func (m builderModel) appendInput() builderModel {
	if m.input == "" {
		return m
	}
	g, err := strconv.Atoi(m.input)
	if err != nil {
		m.errMsg = fmt.Sprintf("not a generator: %s", m.input)
		return m
	}
	if err := m.word.Append(g); err != nil {
		m.errMsg = errors.UserMessage(err)
		return m
	}
	m.input = ""
	m.errMsg = ""
	m.saved = ""
	return m
}

// undo rebuilds the word without its last generator.
func (m builderModel) undo() builderModel {
	gens := m.word.Generators()
	if len(gens) == 0 {
		return m
	}
	w, err := braid.New(m.word.Strands(), gens[:len(gens)-1]...)
	if err != nil {
		// A truncated valid word is always valid.
		return m
	}
	m.word = w
	m.saved = ""
	return m
}

func (m builderModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("braid builder · %d strands", m.word.Strands())))
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("word  "))
	b.WriteString(StyleValue.Render(m.word.String()))
	b.WriteString("\n")

	b.WriteString(StyleDim.Render("perm  "))
	b.WriteString(StyleHighlight.Render(permString(perm.Final(m.word))))
	b.WriteString("\n\n")

	if m.word.Len() > 0 {
		b.WriteString(StyleValue.Render(asciiDiagram(m.word)))
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render("generator: "))
	b.WriteString(StyleValue.Render(m.input))
	b.WriteString(StyleHighlight.Render("▏"))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(StyleWarning.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.saved != "" {
		b.WriteString(styleIconSuccess.Render(iconSuccess) + StyleDim.Render(" saved "+m.saved))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("enter append · backspace/u undo · s save · q quit"))
	b.WriteString("\n")

	return b.String()
}
