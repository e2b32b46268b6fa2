// Package utils contains small internal helpers shared across packages:
// a synchronous JSON-over-HTTP POST helper used by the AI providers and
// string truncation for log output.
package utils
