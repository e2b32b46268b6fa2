package decode

import "strings"

// scanState is the accumulator carried through the single repair scan:
// whether the cursor is inside a string literal, whether the previous byte
// was a backslash escape, and the offset just past the last comma or closing
// delimiter seen outside a string (the last syntactically clean boundary).
type scanState struct {
	insideString      bool
	escapePending     bool
	lastCleanBoundary int
}

// repairTruncated attempts to rebuild parseable JSON from text cut off by a
// token limit. It handles exactly one failure class, delimiter imbalance:
// when no brace or bracket family has more opens than closes the input is not
// truncation-shaped and no candidate is produced. When the text ends inside a
// dangling string literal it is cut back to the last clean boundary, then the
// missing closers are appended, brackets before braces.
//
// The bracket-then-brace close order assumes arrays nested inside object
// fields; deeply irregular nesting can yield syntactically valid but
// semantically wrong structure. That is a known limitation of the heuristic,
// not something this function tries to outsmart.
func repairTruncated(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	openBraces := strings.Count(text, "{")
	closeBraces := strings.Count(text, "}")
	openBrackets := strings.Count(text, "[")
	closeBrackets := strings.Count(text, "]")

	if openBraces <= closeBraces && openBrackets <= closeBrackets {
		return "", false
	}

	var state scanState
	for i := 0; i < len(text); i++ {
		ch := text[i]

		if state.escapePending {
			state.escapePending = false
			continue
		}

		switch {
		case ch == '\\':
			state.escapePending = true
		case ch == '"':
			state.insideString = !state.insideString
		case !state.insideString && (ch == ',' || ch == ']' || ch == '}'):
			state.lastCleanBoundary = i + 1
		}
	}

	// A scan ending mid-string means the truncation landed inside a literal;
	// drop the dangling partial string and everything after it.
	if state.insideString && state.lastCleanBoundary > 0 {
		text = text[:state.lastCleanBoundary]
	}

	openBraces = strings.Count(text, "{")
	closeBraces = strings.Count(text, "}")
	openBrackets = strings.Count(text, "[")
	closeBrackets = strings.Count(text, "]")

	repaired := strings.TrimRight(text, ",") +
		strings.Repeat("]", max(openBrackets-closeBrackets, 0)) +
		strings.Repeat("}", max(openBraces-closeBraces, 0))

	return repaired, true
}
