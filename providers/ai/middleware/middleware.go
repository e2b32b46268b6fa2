package middleware

import (
	"context"
	"net/http"

	"github.com/guestlens/guestlens/providers/ai"
)

// SendFunc is a function that sends a chat request to the LLM provider and
// returns the completed response. It is the base unit threaded through the
// middleware chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware intercepts and optionally transforms LLM send requests and
// responses. Each Middleware receives the next SendFunc in the chain and
// returns a new SendFunc that wraps it. Middlewares are applied
// outermost-first: the first middleware in the slice is the outermost wrapper.
type Middleware func(next SendFunc) SendFunc

// Wrap returns a provider whose SendMessage path runs through the given
// middleware chain. Other Provider methods delegate to the wrapped provider
// unchanged.
func Wrap(provider ai.Provider, middlewares ...Middleware) ai.Provider {
	return &wrapped{
		provider: provider,
		send:     buildSendChain(provider, middlewares),
	}
}

// buildSendChain constructs the linear send chain. The base function calls the
// provider directly. Middlewares are applied in reverse order so that
// middlewares[0] becomes the outermost wrapper, i.e. the first to execute on
// an incoming request.
func buildSendChain(provider ai.Provider, middlewares []Middleware) SendFunc {
	var chain SendFunc = func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return provider.SendMessage(ctx, request)
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}

type wrapped struct {
	provider ai.Provider
	send     SendFunc
}

func (w *wrapped) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	return w.send(ctx, request)
}

func (w *wrapped) IsStopMessage(message *ai.ChatResponse) bool {
	return w.provider.IsStopMessage(message)
}

func (w *wrapped) WithAPIKey(apiKey string) ai.Provider {
	w.provider = w.provider.WithAPIKey(apiKey)
	return w
}

func (w *wrapped) WithBaseURL(baseURL string) ai.Provider {
	w.provider = w.provider.WithBaseURL(baseURL)
	return w
}

func (w *wrapped) WithHttpClient(client *http.Client) ai.Provider {
	w.provider = w.provider.WithHttpClient(client)
	return w
}
