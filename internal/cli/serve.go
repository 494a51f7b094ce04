package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/strandlab/braidviz/pkg/buildinfo"
	braiderrors "github.com/strandlab/braidviz/pkg/errors"
	"github.com/strandlab/braidviz/pkg/pipeline"
)

// contentTypes maps output formats to their HTTP content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// newServeCmd creates the preview server command.
func newServeCmd() *cobra.Command {
	var addr string
	var noCache bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered braid diagrams over HTTP",
		Long: `Serve rendered braid diagrams over HTTP.

Diagrams are requested with query parameters:

	GET /braid?n=3&word=1,-2,1&format=svg

Identical requests are served from the artifact cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, noCache, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ~/.config/braidviz/config.toml)")

	return cmd
}

// runServe builds the router and runs the server until ctx is canceled.
func runServe(ctx context.Context, addr string, noCache bool, configPath string) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	c, err := openCache(cfg, noCache)
	if err != nil {
		return err
	}
	defer c.Close()

	runner := pipeline.NewRunner(c, logger)

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", handleHealth)
	r.Get("/braid", handleBraid(runner, cfg))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestID attaches a UUID to every request for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","version":%q}`, buildinfo.Version)
}

// handleBraid renders one braid per request.
func handleBraid(runner *pipeline.Runner, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := optionsFromQuery(r, cfg)
		if err != nil {
			httpError(w, err)
			return
		}

		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			httpError(w, err)
			return
		}

		format := opts.Formats[0]
		w.Header().Set("Content-Type", contentTypes[format])
		if result.CacheHit {
			w.Header().Set("X-Cache", "hit")
		}
		_, _ = w.Write(result.Artifacts[format])
	}
}

// optionsFromQuery builds pipeline options from request parameters,
// layering config defaults under them.
func optionsFromQuery(r *http.Request, cfg Config) (pipeline.Options, error) {
	q := r.URL.Query()

	w, err := parseWord(q.Get("word"), atoiDefault(q.Get("n"), 0))
	if err != nil {
		return pipeline.Options{}, err
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}

	opts := pipeline.Options{
		Strands:       w.Strands(),
		Word:          w.Generators(),
		Formats:       []string{format},
		Style:         cfg.Style,
		Compact:       cfg.Compact || q.Get("compact") == "true",
		StrandSpacing: cfg.StrandSpacing,
		RowSpacing:    cfg.RowSpacing,
		Color:         cfg.Color,
		LineWidth:     cfg.LineWidth,
		Gap:           cfg.Gap,
		Scale:         cfg.Scale,
	}
	return opts, nil
}

// atoiDefault parses s, returning def on empty or malformed input.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// httpError writes an error response, mapping validation errors to 400.
func httpError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if braiderrors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q,"code":%q}`, braiderrors.UserMessage(err), braiderrors.GetCode(err))
}
