// Package factory selects a concrete ai.Provider by name, so callers can
// switch vendors through configuration instead of imports.
package factory

import (
	"fmt"
	"os"
	"strings"

	"github.com/guestlens/guestlens/providers/ai"
	"github.com/guestlens/guestlens/providers/ai/gemini"
	"github.com/guestlens/guestlens/providers/ai/openai"
)

// EnvProvider is the environment variable consulted when no explicit provider
// name is given.
const EnvProvider = "LLM_PROVIDER"

// New returns the provider registered under name ("openai" or "gemini").
// An empty name falls back to the LLM_PROVIDER environment variable, then to
// "gemini".
func New(name string) (ai.Provider, error) {
	if name == "" {
		name = os.Getenv(EnvProvider)
	}
	if name == "" {
		name = "gemini"
	}

	switch strings.ToLower(name) {
	case "openai":
		return openai.New(), nil
	case "gemini":
		return gemini.New(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (supported: openai, gemini)", name)
	}
}
