package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "hello world"},
		{"  hello   world  ", "hello world"},
		{"hello\n\tworld", "hello world"},
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
	}

	for _, tt := range tests {
		if got := NormalizeWhitespace(tt.in); got != tt.want {
			t.Errorf("NormalizeWhitespace(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" Active ", "active"},
		{"COMPLETED", "completed"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeLowerTrimSpace(tt.in); got != tt.want {
			t.Errorf("NormalizeLowerTrimSpace(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
