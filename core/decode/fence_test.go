package decode

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no fence",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "no fence is trimmed",
			input: "  {\"a\": 1}\n",
			want:  `{"a": 1}`,
		},
		{
			name:  "plain fence",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "fence with language tag",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "multiline payload",
			input: "```json\n{\n  \"a\": 1\n}\n```",
			want:  "{\n  \"a\": 1\n}",
		},
		{
			name:  "text after closing fence is discarded",
			input: "```json\n{\"a\": 1}\n```\nHere is some commentary.",
			want:  `{"a": 1}`,
		},
		{
			name:  "missing closing fence keeps payload",
			input: "```json\n{\"a\": 1}",
			want:  `{"a": 1}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "fence only",
			input: "```\n```",
			want:  "",
		},
		{
			name:  "inner fence-like line with tag is payload",
			input: "```\nline one\n```go\nline two\n```",
			want:  "line one\n```go\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripFences(tt.input)
			if got != tt.want {
				t.Errorf("stripFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
