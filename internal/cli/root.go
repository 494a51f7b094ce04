package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/strandlab/braidviz/pkg/buildinfo"
)

// Execute runs the braidviz CLI and returns an error if any command
// fails. The logger is attached to the context and accessible to all
// commands via loggerFromContext.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "braidviz",
		Short:        "braidviz renders braid words as strand diagrams",
		Long:         `braidviz turns braid group words into two-dimensional diagrams, tracking which strand occupies which position and drawing every crossing with correct over/under occlusion.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newTUICmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
