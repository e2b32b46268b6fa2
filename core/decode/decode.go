package decode

import (
	"encoding/json"
	"errors"
)

// Diagnostic keys present in the result when strict decoding and truncation
// repair both fail. Consumers check KeyRawOutput to decide whether to present
// structured sections or the unprocessed model text.
const (
	// KeyRawOutput holds the de-fenced response text that could not be decoded.
	KeyRawOutput = "raw_output"

	// KeyParseError holds a human-readable description of the strict-decode failure.
	KeyParseError = "parse_error"

	// KeyErrorPosition holds the byte offset of the first unparseable token,
	// present only when the underlying decode error exposes one.
	KeyErrorPosition = "error_position"
)

// Decode recovers a structured value from raw model output.
//
// The raw text is trimmed and stripped of one enclosing markdown code fence,
// then decoded strictly. If strict decoding fails and the text looks like a
// response cut off by a token limit (more opening than closing braces or
// brackets), a single repair pass rebuilds a parseable prefix and the result
// is verified by decoding again. When neither path succeeds, Decode returns a
// diagnostic mapping with [KeyRawOutput], [KeyParseError] and, when known,
// [KeyErrorPosition]; it never returns an error to the caller.
//
// The decoded value is typically a map[string]any, but a well-formed scalar
// or array response is returned as-is.
func Decode(raw string) any {
	text := stripFences(raw)

	value, err := strictDecode(text)
	if err == nil {
		return value
	}

	if candidate, ok := repairTruncated(text); ok {
		if repaired, repairErr := strictDecode(candidate); repairErr == nil {
			return repaired
		}
	}

	return diagnostic(text, err)
}

// strictDecode is the single strict decoding step shared by the first attempt
// and repair verification.
func strictDecode(text string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, err
	}
	return value, nil
}

// diagnostic builds the terminal fallback mapping from the de-fenced text and
// the original strict-decode error.
func diagnostic(text string, err error) map[string]any {
	result := map[string]any{
		KeyRawOutput:  text,
		KeyParseError: err.Error(),
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		result[KeyErrorPosition] = syntaxErr.Offset
	}

	return result
}
