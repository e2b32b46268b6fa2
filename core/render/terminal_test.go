package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/guestlens/guestlens/core/report"
)

func TestTerminal_FullReport(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	Terminal(&buf, sampleReport())
	out := buf.String()

	for _, want := range []string{
		"EXECUTIVE SUMMARY",
		"Guests are mostly satisfied.",
		"STRENGTHS",
		"1. friendly staff",
		"RISK FLAGS",
		"mold reported in room 204",
		"EXAMPLE QUOTES",
		"Best hotel breakfast ever!",
		"ACTION PLAN",
		"KEY THEMES",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminal_RawOutputFallback(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	Terminal(&buf, report.Report{
		"raw_output":  "plain prose answer",
		"parse_error": "invalid character 'p'",
	})
	out := buf.String()

	if !strings.Contains(out, "COULD NOT BE PARSED") {
		t.Errorf("expected parse failure banner, got:\n%s", out)
	}
	if !strings.Contains(out, "plain prose answer") {
		t.Errorf("expected raw output shown, got:\n%s", out)
	}
	if strings.Contains(out, "EXECUTIVE SUMMARY") {
		t.Errorf("structured sections should be skipped on parse failure:\n%s", out)
	}
}

func TestTerminal_WarningShown(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	r := report.Report{"executive_summary": "short"}
	r.SetWarning("Response may be incomplete (finishReason: length)")

	var buf bytes.Buffer
	Terminal(&buf, r)

	if !strings.Contains(buf.String(), "Response may be incomplete") {
		t.Errorf("expected warning in output:\n%s", buf.String())
	}
}
