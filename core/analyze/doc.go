// Package analyze orchestrates a review analysis run: it builds the analysis
// prompt, sends the joined reviews to an ai.Provider with JSON output
// requested, and decodes the response into a report.Report. Responses that
// finish abnormally (truncation, content filtering) are still decoded but get
// a warning attached, so partial analyses remain usable.
package analyze
