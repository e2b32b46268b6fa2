package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/guestlens/guestlens/core/analyze"
	"github.com/guestlens/guestlens/core/extract"
	"github.com/guestlens/guestlens/core/render"
)

// NewAnalyzeCmd builds the one-shot file analysis command.
func NewAnalyzeCmd() *cobra.Command {
	var (
		pdfPath      string
		customPrompt string
		maxReviews   int
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze a review file and print or export the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			reviews, err := extract.FromFile(filepath.Base(path), content)
			if err != nil {
				return err
			}
			if len(reviews) == 0 {
				return fmt.Errorf("no reviews found in %s", path)
			}

			analyzer, err := buildAnalyzer()
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Suffix = fmt.Sprintf(" Analyzing %d reviews...", len(reviews))
			s.Start()

			result, err := analyzer.Analyze(cmd.Context(), analyze.Request{
				Reviews:      reviews,
				CustomPrompt: customPrompt,
				MaxReviews:   maxReviews,
			})
			s.Stop()
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			green := color.New(color.FgGreen)
			green.Fprintf(cmd.OutOrStdout(), "✓ Analyzed %d of %d reviews\n", result.AnalyzedReviews, result.TotalReviews)

			if pdfPath != "" {
				pdfBytes, err := render.PDF(result.Report, "")
				if err != nil {
					return fmt.Errorf("building pdf: %w", err)
				}
				if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", pdfPath, err)
				}
				green.Fprintf(cmd.OutOrStdout(), "✓ Report written to %s\n", pdfPath)
				return nil
			}

			render.Terminal(cmd.OutOrStdout(), result.Report)
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write the report as a PDF to this path instead of printing")
	cmd.Flags().StringVar(&customPrompt, "prompt", "", "Custom analysis prompt (the JSON schema instruction is always appended)")
	cmd.Flags().IntVar(&maxReviews, "max-reviews", 0, "Maximum reviews to analyze (default 200)")

	return cmd
}
