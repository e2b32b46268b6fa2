// Package render turns an analysis report into human-facing output: an A4
// PDF document for downloads and a colored terminal view for the CLI. Both
// renderers tolerate partially-filled reports and fall back to showing the
// raw model output when decoding failed.
package render
