package decode

import "strings"

// fenceMarker is the markdown code-fence delimiter, with or without a
// language tag on the opening line (``` or ```json).
const fenceMarker = "```"

// stripFences removes one enclosing markdown code fence from raw. The opening
// fence line is dropped, the payload runs until the first line consisting
// solely of the closing marker, and everything after that line is discarded —
// a well-formed response ends at the fence, so trailing commentary is noise.
// Text that does not start with a fence is returned trimmed but untouched.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, fenceMarker) {
		return text
	}

	var payload []string
	inside := false

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		switch {
		case !inside && strings.HasPrefix(stripped, fenceMarker):
			inside = true
		case stripped == fenceMarker:
			return strings.Join(payload, "\n")
		case inside:
			payload = append(payload, line)
		}
	}

	return strings.Join(payload, "\n")
}
