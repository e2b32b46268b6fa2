// Package cli wires the guestlens commands: an HTTP server and a one-shot
// file analysis. Provider selection, model override, and verbosity are shared
// persistent flags; a local .env file is loaded before any command runs.
package cli

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/guestlens/guestlens/core/analyze"
	"github.com/guestlens/guestlens/internal/logging"
	"github.com/guestlens/guestlens/providers/ai/factory"
	"github.com/guestlens/guestlens/providers/ai/middleware"
)

const requestTimeout = 3 * time.Minute

var (
	providerName string
	modelName    string
	verbose      bool

	logger *slog.Logger
)

// NewRootCmd builds the guestlens command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guestlens",
		Short: "Analyze hotel guest reviews with an LLM",
		Long: `Guestlens extracts guest reviews from CSV, XLSX, TXT, HTML or JSON files,
sends them to an LLM provider, and produces a structured analysis report
(summary, strengths, weaknesses, risk flags, action plan).

Examples:
  # Analyze a review export in the terminal
  guestlens analyze reviews.xlsx

  # Produce a PDF report with a custom prompt
  guestlens analyze reviews.csv --pdf report.pdf --prompt "Focus on housekeeping"

  # Run the HTTP API
  guestlens serve --addr :8000`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			logger = logging.New(verbose)
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&providerName, "provider", "", "LLM provider (openai, gemini; defaults to $LLM_PROVIDER)")
	cmd.PersistentFlags().StringVar(&modelName, "model", "", "Model override (defaults to the provider's default)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}

// buildAnalyzer assembles the provider with its middleware chain and wraps it
// in an analyzer.
func buildAnalyzer() (*analyze.Analyzer, error) {
	provider, err := factory.New(providerName)
	if err != nil {
		return nil, err
	}

	logLevel := middleware.LogLevelStandard
	if verbose {
		logLevel = middleware.LogLevelVerbose
	}

	provider = middleware.Wrap(provider,
		middleware.NewLoggingMiddleware(logger, logLevel),
		middleware.NewRetryMiddleware(middleware.RetryConfig{}),
		middleware.NewRateLimitMiddleware(rate.NewLimiter(3, 5)),
		middleware.NewTimeoutMiddleware(requestTimeout),
	)

	return analyze.New(provider,
		analyze.WithModel(modelName),
		analyze.WithLogger(logger),
	), nil
}
