package names

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase and split on hyphen", "Mohamed Al-Ali", "mohamed al ali"},
		{"already normalized", "mohamed al ali", "mohamed al ali"},
		{"strips diacritics", "Élodie Müller", "elodie muller"},
		{"removes digits and punctuation", "Ahmed. 3rd (Jr)!", "ahmed rd jr"},
		{"collapses whitespace", "  omar \t  khalid  ", "omar khalid"},
		{"non-latin letters dropped", "محمد ali", "ali"},
		{"empty input", "", ""},
		{"only punctuation", "--- !!!", ""},
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
	inputs := []string{
		"Mohamed Al-Ali",
		"Élodie Müller",
		"",
		"  KHALID   bin-Rashid  ",
		"جون smith 42",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
