package ident

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips separators", "784-1990-1234567-8", "784199012345678"},
		{"strips spaces", "78419901234567 8", "784199012345678"},
		{"uppercases letters", "ab123456", "AB123456"},
		{"mixed noise", " n-0123·456/x ", "N0123456X"},
		{"empty", "", ""},
		{"only noise", "--- //", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"784-1990-1234567-8", "ab 123", "", "N°12345"}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
