package analyze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/guestlens/guestlens/core/decode"
	"github.com/guestlens/guestlens/core/extract"
	"github.com/guestlens/guestlens/core/report"
	"github.com/guestlens/guestlens/providers/ai"
)

// DefaultMaxReviews caps how many reviews are sent to the model in one run.
const DefaultMaxReviews = 200

// ErrNoReviews is returned when a request carries no non-empty reviews.
var ErrNoReviews = errors.New("no reviews to analyze")

// Analyzer runs review analyses against a configured provider.
type Analyzer struct {
	provider ai.Provider
	model    string
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(a *Analyzer) { a.model = model }
}

// WithLogger sets the logger used for run-level events.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// New creates an Analyzer on top of the given provider.
func New(provider ai.Provider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider: provider,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Request describes one analysis run.
type Request struct {
	// Reviews is the full extracted review list.
	Reviews []extract.Review

	// CustomPrompt replaces the default analysis instruction when non-empty.
	// The JSON schema instruction is appended either way.
	CustomPrompt string

	// MaxReviews caps how many reviews are analyzed. Zero means
	// DefaultMaxReviews; a negative value disables the cap.
	MaxReviews int
}

// Result is a completed analysis run.
type Result struct {
	// Report is the decoded analysis. When the model's output could not be
	// parsed it carries the raw text and parse diagnostics instead.
	Report report.Report

	// TotalReviews is how many reviews the request carried.
	TotalReviews int

	// AnalyzedReviews is how many reviews were actually sent to the model
	// after capping.
	AnalyzedReviews int
}

// Analyze sends the reviews to the provider and decodes the response into a
// report. The returned error covers transport and provider failures only:
// malformed model output is never an error, it surfaces as a diagnostic
// report.
func (a *Analyzer) Analyze(ctx context.Context, request Request) (*Result, error) {
	reviews := nonEmpty(request.Reviews)
	if len(reviews) == 0 {
		return nil, ErrNoReviews
	}

	total := len(reviews)
	maxReviews := request.MaxReviews
	if maxReviews == 0 {
		maxReviews = DefaultMaxReviews
	}
	if maxReviews > 0 && len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}

	a.logger.InfoContext(ctx, "analyzing reviews",
		slog.Int("total_reviews", total),
		slog.Int("analyzed_reviews", len(reviews)),
		slog.String("model", a.model),
	)

	response, err := a.provider.SendMessage(ctx, ai.ChatRequest{
		Model:        a.model,
		SystemPrompt: buildSystemPrompt(strings.TrimSpace(request.CustomPrompt)),
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: "REVIEWS:\n" + joinReviews(reviews)},
		},
		GenerationConfig: &ai.GenerationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 8192,
		},
		ResponseFormat: &ai.ResponseFormat{Type: ai.ResponseFormatJSON},
	})
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}

	result := report.FromValue(decode.Decode(response.Content))

	if !normalFinish(response.FinishReason) {
		result.SetWarning(fmt.Sprintf("Response may be incomplete (finishReason: %s)", response.FinishReason))
		a.logger.WarnContext(ctx, "abnormal finish reason",
			slog.String("finish_reason", response.FinishReason),
		)
	}

	return &Result{
		Report:          result,
		TotalReviews:    total,
		AnalyzedReviews: len(reviews),
	}, nil
}

// joinReviews renders the reviews as a bulleted block for the prompt.
func joinReviews(reviews []extract.Review) string {
	lines := make([]string, 0, len(reviews))
	for _, review := range reviews {
		lines = append(lines, "- "+review.Text)
	}
	return strings.Join(lines, "\n")
}

// nonEmpty drops reviews with blank text.
func nonEmpty(reviews []extract.Review) []extract.Review {
	var kept []extract.Review
	for _, review := range reviews {
		if strings.TrimSpace(review.Text) != "" {
			kept = append(kept, review)
		}
	}
	return kept
}

// normalFinish reports whether the finish reason indicates a complete
// response. Both the generic vocabulary and Gemini's raw values are accepted,
// along with the empty string some providers return.
func normalFinish(reason string) bool {
	switch reason {
	case "", "stop", "STOP", "END_TURN", "FINISH":
		return true
	}
	return false
}
