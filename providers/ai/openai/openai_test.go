package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/guestlens/guestlens/providers/ai"
)

func TestWithAPIKey(t *testing.T) {
	provider := New().WithAPIKey("test-key").(*OpenAIProvider)
	if provider.apiKey != "test-key" {
		t.Errorf("expected apiKey %q, got %q", "test-key", provider.apiKey)
	}
}

func TestWithBaseURL(t *testing.T) {
	provider := New().WithBaseURL("https://custom.api.com/v1").(*OpenAIProvider)
	if provider.baseURL != "https://custom.api.com/v1" {
		t.Errorf("expected baseURL %q, got %q", "https://custom.api.com/v1", provider.baseURL)
	}
}

func TestSendMessage_Basic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing Bearer auth, got %q", r.Header.Get("Authorization"))
		}

		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("expected default model, got %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("expected system prompt first, got %+v", req.Messages)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
			t.Errorf("expected json_object response format, got %+v", req.ResponseFormat)
		}

		resp := openai.ChatCompletionResponse{
			ID:      "chatcmpl-1",
			Object:  "chat.completion",
			Created: 1700000000,
			Model:   "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{{
				Message:      openai.ChatCompletionMessage{Role: "assistant", Content: `{"positives": []}`},
				FinishReason: openai.FinishReasonStop,
			}},
			Usage: openai.Usage{PromptTokens: 12, CompletionTokens: 5, TotalTokens: 17},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	response, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		SystemPrompt:   "You analyze guest reviews.",
		Messages:       []ai.Message{{Role: ai.RoleUser, Content: "Reviews:\n- Fine"}},
		ResponseFormat: &ai.ResponseFormat{Type: ai.ResponseFormatJSON},
	})
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if response.Content != `{"positives": []}` {
		t.Errorf("unexpected content: %q", response.Content)
	}
	if response.FinishReason != "stop" {
		t.Errorf("expected finish reason %q, got %q", "stop", response.FinishReason)
	}
	if response.Usage == nil || response.Usage.TotalTokens != 17 {
		t.Errorf("expected usage with 17 total tokens, got %+v", response.Usage)
	}
}

func TestSendMessage_NoAPIKey(t *testing.T) {
	provider := &OpenAIProvider{client: &http.Client{}}

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestSendMessage_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "choices": []}`))
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Fatalf("expected no-choices error, got %v", err)
	}
}

func TestRequestFromGeneric_GenerationConfig(t *testing.T) {
	req := requestFromGeneric("gpt-4o", ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		GenerationConfig: &ai.GenerationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 8192,
		},
	})

	if req.Temperature != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", req.Temperature)
	}
	if req.MaxTokens != 8192 {
		t.Errorf("expected max tokens 8192, got %d", req.MaxTokens)
	}
	if req.ResponseFormat != nil {
		t.Errorf("expected no response format, got %+v", req.ResponseFormat)
	}
}

func TestIsStopMessage(t *testing.T) {
	provider := New()

	tests := []struct {
		name    string
		message *ai.ChatResponse
		want    bool
	}{
		{name: "nil message", message: nil, want: true},
		{name: "stop", message: &ai.ChatResponse{FinishReason: "stop", Content: "x"}, want: true},
		{name: "length", message: &ai.ChatResponse{FinishReason: "length", Content: "x"}, want: true},
		{name: "empty content", message: &ai.ChatResponse{}, want: true},
		{name: "in-flight content", message: &ai.ChatResponse{Content: "partial"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := provider.IsStopMessage(tt.message); got != tt.want {
				t.Errorf("IsStopMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}
