package report

import (
	"fmt"

	"github.com/guestlens/guestlens/core/decode"
)

// Well-known section keys the model is asked to fill. All of them are
// optional; renderers skip sections whose key is absent.
const (
	KeyExecutiveSummary = "executive_summary"
	KeyQuotes           = "quotes"
	KeyPositives        = "positives"
	KeyNegatives        = "negatives"
	KeyRiskFlags        = "risk_flags"
	KeyActionPlan       = "action_plan"
	KeyBestPractices    = "best_practices"
	KeyThemes           = "key_themes"

	// KeyRecommendations is the legacy name some model responses use for the
	// action plan; ActionPlan falls back to it.
	KeyRecommendations = "actionable_recommendations"

	// KeyWarning carries the non-destructive truncation warning attached by
	// the analyzer when the provider signals an abnormal finish reason.
	KeyWarning = "_warning"

	// KeyResult holds a degenerate model response (a bare array or scalar)
	// so report consumers always see a mapping.
	KeyResult = "result"
)

// Quote keys inside the KeyQuotes sub-mapping.
const (
	KeyWowEffect        = "wow_effect"
	KeyTypicalPositive  = "typical_positive"
	KeyTypicalNegatives = "typical_negatives"
)

// Report is the structured analysis result. It is a mapping from section keys
// to JSON-compatible values, created once by [FromValue] and read by the
// renderers; the only mutation after creation is [Report.SetWarning].
type Report map[string]any

// Quotes groups the example-review quotes the model selected.
type Quotes struct {
	WowEffect        string
	TypicalPositive  string
	TypicalNegatives []string
}

// FromValue converts a decoded value into a Report. Mappings convert
// directly; any other top-level value is a degenerate model response and is
// stored under [KeyResult] so consumers always receive a mapping.
func FromValue(value any) Report {
	if m, ok := value.(map[string]any); ok {
		return Report(m)
	}
	return Report{KeyResult: value}
}

// ExecutiveSummary returns the summary section, or "" when absent.
func (r Report) ExecutiveSummary() string {
	return r.stringAt(KeyExecutiveSummary)
}

// Positives returns the strengths list.
func (r Report) Positives() []string {
	return r.stringListAt(KeyPositives)
}

// Negatives returns the weaknesses list.
func (r Report) Negatives() []string {
	return r.stringListAt(KeyNegatives)
}

// RiskFlags returns the critical-issue list.
func (r Report) RiskFlags() []string {
	return r.stringListAt(KeyRiskFlags)
}

// ActionPlan returns the recommended actions, falling back to the legacy
// actionable_recommendations key when action_plan is absent.
func (r Report) ActionPlan() []string {
	if _, ok := r[KeyActionPlan]; ok {
		return r.stringListAt(KeyActionPlan)
	}
	return r.stringListAt(KeyRecommendations)
}

// BestPractices returns the systemic-improvement suggestions.
func (r Report) BestPractices() []string {
	return r.stringListAt(KeyBestPractices)
}

// KeyThemesList returns the key themes list.
func (r Report) KeyThemesList() []string {
	return r.stringListAt(KeyThemes)
}

// Quotes returns the example-quote block, zero-valued when absent.
func (r Report) Quotes() Quotes {
	block, ok := r[KeyQuotes].(map[string]any)
	if !ok {
		return Quotes{}
	}
	sub := Report(block)
	return Quotes{
		WowEffect:        sub.stringAt(KeyWowEffect),
		TypicalPositive:  sub.stringAt(KeyTypicalPositive),
		TypicalNegatives: sub.stringListAt(KeyTypicalNegatives),
	}
}

// RawOutput returns the unprocessed model text and true when decoding failed.
func (r Report) RawOutput() (string, bool) {
	raw, ok := r[decode.KeyRawOutput]
	if !ok {
		return "", false
	}
	return fmt.Sprint(raw), true
}

// ParseError returns the decode failure description, if any.
func (r Report) ParseError() (string, bool) {
	msg, ok := r[decode.KeyParseError].(string)
	return msg, ok && msg != ""
}

// Warning returns the truncation warning attached by the analyzer, if any.
func (r Report) Warning() (string, bool) {
	msg, ok := r[KeyWarning].(string)
	return msg, ok && msg != ""
}

// SetWarning attaches a truncation warning without touching any other key.
func (r Report) SetWarning(msg string) {
	r[KeyWarning] = msg
}

// stringAt returns the value under key rendered as a string. Non-string
// scalars are formatted rather than dropped, matching how lenient the
// renderers need to be with model output.
func (r Report) stringAt(key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	return fmt.Sprint(value)
}

// stringListAt coerces the value under key into a list of strings. A single
// string becomes a one-element list and non-string elements are formatted,
// because models occasionally return a sentence where a list was asked for.
func (r Report) stringListAt(key string) []string {
	value, ok := r[key]
	if !ok || value == nil {
		return nil
	}

	switch v := value.(type) {
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, isString := item.(string); isString {
				if s != "" {
					items = append(items, s)
				}
				continue
			}
			if item != nil {
				items = append(items, fmt.Sprint(item))
			}
		}
		return items
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}
