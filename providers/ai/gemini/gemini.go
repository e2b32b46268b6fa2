package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/guestlens/guestlens/internal/utils"
	"github.com/guestlens/guestlens/providers/ai"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash-lite"
)

// GeminiProvider implements the ai.Provider interface for Google's Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Gemini provider instance with default values from environment.
// Environment variables:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_BASE_URL: Base URL for API (optional, defaults to Google's API)
func New() *GeminiProvider {
	apiKey := os.Getenv("GEMINI_API_KEY")
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *GeminiProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *GeminiProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements the ai.Provider interface.
// It sends a chat request to the Gemini API and returns the response.
func (p *GeminiProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	model := request.Model
	if model == "" {
		model = defaultModel
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)
	geminiReq := requestToGemini(request)

	resp, err := p.post(ctx, url, geminiReq)
	if err != nil {
		// Some models reject responseMimeType with a 400. Retry once with
		// JSON mode dropped so the caller still gets text to decode.
		if isBadRequest(err) && geminiReq.GenerationConfig != nil && geminiReq.GenerationConfig.ResponseMimeType != "" {
			geminiReq.GenerationConfig.ResponseMimeType = ""
			resp, err = p.post(ctx, url, geminiReq)
		}
		if err != nil {
			return nil, err
		}
	}

	result := geminiToGeneric(*resp)
	result.Model = model // Ensure model is set even if not in response
	return result, nil
}

func (p *GeminiProvider) post(ctx context.Context, url string, body generateContentRequest) (*generateContentResponse, error) {
	httpResponse, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"", // Gemini authenticates via header, not Bearer token
		body,
		utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if err != nil {
		if httpResponse != nil && httpResponse.StatusCode == http.StatusBadRequest {
			return nil, &badRequestError{err: err}
		}
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("empty response from Gemini API: %s", httpResponse.Status)
	}
	return resp, nil
}

// badRequestError marks a 400 response so SendMessage can decide to retry
// without JSON mode.
type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string { return e.err.Error() }
func (e *badRequestError) Unwrap() error { return e.err }

func isBadRequest(err error) bool {
	_, ok := err.(*badRequestError)
	return ok
}

// IsStopMessage reports whether the given chat response should be treated as a stop/end signal.
func (p *GeminiProvider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}

	switch message.FinishReason {
	case "stop", "length", "content_filter":
		return true
	}

	return message.Content == ""
}
