package decode

import "testing"

func TestRepairTruncated(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		repaired bool
	}{
		{
			name:     "empty input gives up",
			input:    "",
			repaired: false,
		},
		{
			name:     "balanced text gives up",
			input:    `{"a": 1, }extra}`,
			repaired: false,
		},
		{
			name:     "valid text gives up",
			input:    `{"a": [1, 2]}`,
			repaired: false,
		},
		{
			name:     "missing brace",
			input:    `{"a": 1`,
			want:     `{"a": 1}`,
			repaired: true,
		},
		{
			name:     "missing bracket and brace",
			input:    `{"a": [1, 2`,
			want:     `{"a": [1, 2]}`,
			repaired: true,
		},
		{
			name:     "dangling string cut at last boundary",
			input:    `{"a": [1, 2, 3], "b": "incomple`,
			want:     `{"a": [1, 2, 3]}`,
			repaired: true,
		},
		{
			name:     "trailing comma stripped before closing",
			input:    `{"a": [1, 2],`,
			want:     `{"a": [1, 2]}`,
			repaired: true,
		},
		{
			name:     "escaped quote does not toggle string state",
			input:    `{"a": "he said \"hi\"", "b": [1`,
			want:     `{"a": "he said \"hi\"", "b": [1]}`,
			repaired: true,
		},
		{
			name:     "dangling string with no prior boundary keeps text",
			input:    `{"a": "broken`,
			want:     `{"a": "broken}`,
			repaired: true,
		},
		{
			name:     "brackets closed before braces",
			input:    `{"a": {"b": [1, {"c": 2`,
			want:     `{"a": {"b": [1, {"c": 2]}}}`,
			repaired: true,
		},
		{
			name:     "excess closers in one family are not repeated negatively",
			input:    `[1, 2, }}`,
			want:     `[1, 2, }}]`,
			repaired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := repairTruncated(tt.input)
			if ok != tt.repaired {
				t.Fatalf("repairTruncated() ok = %v, want %v", ok, tt.repaired)
			}
			if ok && got != tt.want {
				t.Errorf("repairTruncated() = %q, want %q", got, tt.want)
			}
		})
	}
}
