package utils

import "fmt"

// DefaultMaxStringLength bounds strings destined for log output.
const DefaultMaxStringLength = 500

// TruncateString cuts s down to maxLen bytes and appends a marker carrying
// the original length, so a truncated log line is distinguishable from a
// short one. A maxLen of zero or less falls back to DefaultMaxStringLength.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}
