package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/guestlens/guestlens/core/report"
)

// Terminal writes a colored, sectioned view of the report to w.
func Terminal(w io.Writer, r report.Report) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	fmt.Fprintln(w)

	if warning, ok := r.Warning(); ok {
		yellow.Fprintf(w, "⚠️  %s\n\n", warning)
	}

	if raw, ok := r.RawOutput(); ok {
		red.Fprintln(w, "📄 MODEL OUTPUT COULD NOT BE PARSED:")
		if parseErr, ok := r.ParseError(); ok {
			fmt.Fprintf(w, "   %s\n", parseErr)
		}
		fmt.Fprintf(w, "\n%s\n", raw)
		return
	}

	if summary := r.ExecutiveSummary(); summary != "" {
		cyan.Fprintln(w, "📋 EXECUTIVE SUMMARY:")
		fmt.Fprintf(w, "   %s\n\n", summary)
	}

	printList(w, green, "✅ STRENGTHS:", r.Positives())
	printList(w, red, "❌ WEAKNESSES:", r.Negatives())
	printList(w, red, "🚨 RISK FLAGS:", r.RiskFlags())

	quotes := r.Quotes()
	if quotes.WowEffect != "" || quotes.TypicalPositive != "" || len(quotes.TypicalNegatives) > 0 {
		cyan.Fprintln(w, "💬 EXAMPLE QUOTES:")
		if quotes.WowEffect != "" {
			fmt.Fprintf(w, "   ⭐ %q\n", quotes.WowEffect)
		}
		if quotes.TypicalPositive != "" {
			fmt.Fprintf(w, "   ✅ %q\n", quotes.TypicalPositive)
		}
		for _, neg := range quotes.TypicalNegatives {
			fmt.Fprintf(w, "   ❌ %q\n", neg)
		}
		fmt.Fprintln(w)
	}

	printList(w, cyan, "📌 ACTION PLAN:", r.ActionPlan())
	printList(w, cyan, "💡 BEST PRACTICES:", r.BestPractices())
	printList(w, cyan, "🔑 KEY THEMES:", r.KeyThemesList())
}

func printList(w io.Writer, header *color.Color, title string, items []string) {
	if len(items) == 0 {
		return
	}
	header.Fprintln(w, title)
	for i, item := range items {
		fmt.Fprintf(w, "   %d. %s\n", i+1, item)
	}
	fmt.Fprintln(w)
}
