package format

import "testing"

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "groups sentences in threes",
			input:    "A. B. C. D.",
			expected: "A.\nB.\nC.\n\nD.",
		},
		{
			name:     "no blank line after final sentence",
			input:    "One. Two. Three.",
			expected: "One.\nTwo.\nThree.",
		},
		{
			name:     "keeps original terminators",
			input:    "Is it? It is! Indeed.",
			expected: "Is it?\nIt is!\nIndeed.",
		},
		{
			name:     "text without terminator",
			input:    "Just a phrase",
			expected: "Just a phrase",
		},
		{
			name:     "ellipsis collapses to one terminator",
			input:    "Wait... Go on.",
			expected: "Wait.\nGo on.",
		},
		{
			name:     "repeated fragment takes its own terminator",
			input:    "Yes! Yes. Yes?",
			expected: "Yes!\nYes.\nYes?",
		},
		{
			name:     "seven sentences make three blocks",
			input:    "a. b. c. d. e. f. g.",
			expected: "a.\nb.\nc.\n\nd.\ne.\nf.\n\ng.",
		},
		{
			name:     "whitespace fragments are dropped",
			input:    "First.   . Second.",
			expected: "First.\nSecond.",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace input",
			input:    "   \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSummary(tt.input); got != tt.expected {
				t.Errorf("FormatSummary(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
