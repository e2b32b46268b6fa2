package gemini

import (
	"testing"

	"github.com/guestlens/guestlens/providers/ai"
)

func TestRequestToGemini_SystemPrompt(t *testing.T) {
	req := requestToGemini(ai.ChatRequest{
		SystemPrompt: "analyze reviews",
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})

	if req.SystemInstruction == nil {
		t.Fatal("expected system instruction")
	}
	if req.SystemInstruction.Parts[0].Text != "analyze reviews" {
		t.Errorf("unexpected system instruction: %+v", req.SystemInstruction)
	}
}

func TestBuildContents_RoleMapping(t *testing.T) {
	contents := buildContents([]ai.Message{
		{Role: ai.RoleUser, Content: "question"},
		{Role: ai.RoleAssistant, Content: "answer"},
		{Role: ai.RoleAssistant, Content: ""}, // empty assistant turns are dropped
		{Role: ai.RoleSystem, Content: "stray system"},
	})

	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Errorf("expected role user, got %q", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Errorf("expected role model, got %q", contents[1].Role)
	}
	if contents[2].Role != "user" {
		t.Errorf("stray system message should map to user, got %q", contents[2].Role)
	}
}

func TestBuildGenerationConfig(t *testing.T) {
	gc := buildGenerationConfig(
		&ai.GenerationConfig{Temperature: 0.2, MaxOutputTokens: 8192},
		&ai.ResponseFormat{Type: ai.ResponseFormatJSON},
	)

	if gc == nil {
		t.Fatal("expected generation config")
	}
	if gc.Temperature == nil || *gc.Temperature != 0.2 {
		t.Errorf("unexpected temperature: %v", gc.Temperature)
	}
	if gc.MaxOutputTokens == nil || *gc.MaxOutputTokens != 8192 {
		t.Errorf("unexpected max output tokens: %v", gc.MaxOutputTokens)
	}
	if gc.ResponseMimeType != "application/json" {
		t.Errorf("expected JSON mime type, got %q", gc.ResponseMimeType)
	}

	if got := buildGenerationConfig(nil, nil); got != nil {
		t.Errorf("expected nil config when nothing is set, got %+v", got)
	}
}

func TestGeminiToGeneric_MultiPartContent(t *testing.T) {
	resp := geminiToGeneric(generateContentResponse{
		Candidates: []candidate{{
			Content: &content{
				Role:  "model",
				Parts: []part{{Text: "first"}, {Text: "second"}},
			},
			FinishReason: "MAX_TOKENS",
		}},
	})

	if resp.Content != "first\nsecond" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if resp.FinishReason != "length" {
		t.Errorf("expected finish reason %q, got %q", "length", resp.FinishReason)
	}
}

func TestMapFinishReason(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"STOP", "stop"},
		{"MAX_TOKENS", "length"},
		{"SAFETY", "content_filter"},
		{"RECITATION", "content_filter"},
		{"OTHER", "stop"},
		{"", ""},
		{"UNKNOWN_REASON", "unknown_reason"},
	}

	for _, tt := range tests {
		if got := mapFinishReason(tt.in); got != tt.want {
			t.Errorf("mapFinishReason(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
