package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strandlab/braidviz/pkg/braidio"
	"github.com/strandlab/braidviz/pkg/cache"
	"github.com/strandlab/braidviz/pkg/errors"
	"github.com/strandlab/braidviz/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	word          string  // generator list, e.g. "1,-2,1"
	strands       int     // strand count (0 = infer from word)
	output        string  // output file path (or base path for multiple formats)
	vizType       string  // "diagram" or "nodelink"
	formats       []string
	style         string
	compact       bool
	strandSpacing float64
	rowSpacing    float64
	color         string
	lineWidth     float64
	gap           float64
	scale         float64
	noCache       bool
	configPath    string
}

// newRenderCmd creates the render command for generating visualizations.
// The word comes either from --word or from a braid JSON file argument.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a braid word to SVG, PNG, PDF, or JSON",
		Long: `Render a braid word as a two-dimensional strand diagram.

The word is given either inline with --word, as signed generator indices,
or as a braid JSON file argument. Positive indices cross the left strand
in front; negative indices cross it behind.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = splitList(formatsStr)
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runRender(cmd.Context(), cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.word, "word", "w", "", "generator list, e.g. \"1,-2,1\"")
	cmd.Flags().IntVarP(&opts.strands, "strands", "n", 0, "strand count (default: inferred from word)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", "", "visualization type: diagram (default), nodelink")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "pack disjoint crossings into shared bands")
	cmd.Flags().Float64Var(&opts.strandSpacing, "strand-spacing", 0, "horizontal distance between strand slots")
	cmd.Flags().Float64Var(&opts.rowSpacing, "row-spacing", 0, "vertical height of each band")
	cmd.Flags().StringVar(&opts.color, "color", "", "single stroke color (default: per-strand palette)")
	cmd.Flags().Float64Var(&opts.lineWidth, "line-width", 0, "strand stroke width")
	cmd.Flags().Float64Var(&opts.gap, "gap", 0, "visual break width at undercrossings")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG rasterization scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/braidviz/config.toml)")

	return cmd
}

// splitList parses a comma-separated flag value into a slice.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// runRender resolves the word, executes the pipeline, and writes every
// requested format to disk.
func runRender(ctx context.Context, cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg, opts)

	popts, err := buildPipelineOptions(input, opts)
	if err != nil {
		return err
	}

	c, err := openCache(cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer c.Close()

	prog := newProgress(logger)
	runner := pipeline.NewRunner(c, logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", result.Word))

	if err := writeArtifacts(result, popts, opts); err != nil {
		return err
	}
	printStats(result.Word.Strands(), result.Word.Len(), result.Diagram.Bands, result.CacheHit)
	return nil
}

// applyConfig fills flag values the user did not set from the config
// file. Flags always win over the config.
func applyConfig(cmd *cobra.Command, cfg Config, opts *renderOpts) {
	flags := cmd.Flags()
	if !flags.Changed("style") && cfg.Style != "" {
		opts.style = cfg.Style
	}
	if !flags.Changed("format") && len(cfg.Formats) > 0 {
		opts.formats = cfg.Formats
	}
	if !flags.Changed("compact") && cfg.Compact {
		opts.compact = true
	}
	if !flags.Changed("strand-spacing") && cfg.StrandSpacing != 0 {
		opts.strandSpacing = cfg.StrandSpacing
	}
	if !flags.Changed("row-spacing") && cfg.RowSpacing != 0 {
		opts.rowSpacing = cfg.RowSpacing
	}
	if !flags.Changed("color") && cfg.Color != "" {
		opts.color = cfg.Color
	}
	if !flags.Changed("line-width") && cfg.LineWidth != 0 {
		opts.lineWidth = cfg.LineWidth
	}
	if !flags.Changed("gap") && cfg.Gap != 0 {
		opts.gap = cfg.Gap
	}
	if !flags.Changed("scale") && cfg.Scale != 0 {
		opts.scale = cfg.Scale
	}
}

// buildPipelineOptions resolves the braid word from flags or an input
// file and assembles pipeline options.
func buildPipelineOptions(input string, opts *renderOpts) (pipeline.Options, error) {
	popts := pipeline.Options{
		VizType:       opts.vizType,
		Formats:       opts.formats,
		Style:         opts.style,
		Compact:       opts.compact,
		StrandSpacing: opts.strandSpacing,
		RowSpacing:    opts.rowSpacing,
		Color:         opts.color,
		LineWidth:     opts.lineWidth,
		Gap:           opts.gap,
		Scale:         opts.scale,
	}

	switch {
	case input != "" && opts.word != "":
		return popts, errors.New(errors.ErrCodeInvalidInput,
			"pass either --word or a braid file, not both")
	case input != "":
		w, err := braidio.ReadFile(input)
		if err != nil {
			return popts, err
		}
		popts.Strands = w.Strands()
		popts.Word = w.Generators()
	default:
		w, err := parseWord(opts.word, opts.strands)
		if err != nil {
			return popts, err
		}
		popts.Strands = w.Strands()
		popts.Word = w.Generators()
	}
	// Normalize here so writeArtifacts sees the effective format list.
	popts.Normalize()
	return popts, nil
}

// openCache opens the artifact cache, honoring --no-cache.
func openCache(cfg Config, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// writeArtifacts writes each rendered format to its output path.
func writeArtifacts(result *pipeline.Result, popts pipeline.Options, opts *renderOpts) error {
	base := outputBase(opts.output)

	single := len(result.Artifacts) == 1
	for _, format := range popts.Formats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if single && opts.output != "" {
			path = opts.output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputBase derives the base output path, stripping a known format
// extension so "braid.svg" and "braid" behave the same.
func outputBase(output string) string {
	if output == "" {
		return "braid"
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}
