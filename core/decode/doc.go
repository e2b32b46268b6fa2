// Package decode recovers structured data from raw LLM text output. Models
// frequently wrap their JSON in markdown code fences and, when a token limit
// cuts generation short, leave the payload structurally unbalanced. This
// package strips the fence, tries a strict decode, and on failure attempts a
// single bounded truncation repair before falling back to a diagnostic
// mapping that carries the raw text and the parse error.
//
// The main entry point is [Decode]. It never returns an error and never
// panics: every input yields either the decoded value or a mapping containing
// [KeyRawOutput] and [KeyParseError]. It is pure and safe for concurrent use.
package decode
