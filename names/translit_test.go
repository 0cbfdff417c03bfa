package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreVariants(t *testing.T) {
	tests := []struct {
		name  string
		name1 string
		name2 string
		want  bool
	}{
		{"variant spellings across tokens", "Mohamed Ali", "Mohammed Aly", true},
		{"variant vs root", "Mohammed", "Mohamed", true},
		{"two variants of same root", "Muhammad", "Mohammad", true},
		{"unrelated names", "John Smith", "Jane Doe", false},
		{"identical names are not variants", "Mohamed", "Mohamed", false},
		{"identical full names are not variants", "Mohamed Ali", "Mohamed Ali", false},
		{"one variant token is enough", "Ahmed Hassan", "Ahmad Nowhere", true},
		{"case and punctuation ignored", "AHMAD", "ahmed.", true},
		{"unknown similar spellings", "Mohamed", "Mohamid", false},
		{"empty inputs", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreVariants(tt.name1, tt.name2); got != tt.want {
				t.Errorf("AreVariants(%q, %q) = %v, want %v", tt.name1, tt.name2, got, tt.want)
			}
			// The relation is symmetric by construction.
			if got := AreVariants(tt.name2, tt.name1); got != tt.want {
				t.Errorf("AreVariants(%q, %q) = %v, want %v", tt.name2, tt.name1, got, tt.want)
			}
		})
	}
}

func TestCanonicalForm(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"variant maps to root", "mohammed", "mohamed"},
		{"root maps to itself", "mohamed", "mohamed"},
		{"unknown token unchanged", "smith", "smith"},
		{"normalizes before lookup", "  MUHAMMAD ", "mohamed"},
		{"empty token", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalForm(tt.token); got != tt.want {
				t.Errorf("CanonicalForm(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"maps every token", "Mohammed Aly", "mohamed ali"},
		{"mixed known and unknown", "Ahmad Smith", "ahmed smith"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonicalize(tt.input); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolver_Compare(t *testing.T) {
	tests := []struct {
		name           string
		name1          string
		name2          string
		wantMatch      bool
		wantConfidence float64
	}{
		{"exact after normalization", "Mohamed Al-Ali", "mohamed al ali", true, 1.0},
		{"canonical forms equal", "Mohammed Aly", "Mohamed Ali", true, 0.9},
		{"variant token among unknowns", "Ahmad Smith", "Ahmed Jones", true, 0.85},
		{"no relation", "John Smith", "Jane Doe", false, 0},
		{"empty side", "", "Mohamed", false, 0},
		{"both empty", "", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.name1, tt.name2)
			assert.Equal(t, tt.wantMatch, got.Match)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
			assert.NotEmpty(t, got.Reason)

			// Symmetric confidence.
			reversed := Compare(tt.name2, tt.name1)
			assert.Equal(t, got.Confidence, reversed.Confidence)
		})
	}
}

func TestNewResolver_ExtraFamilies(t *testing.T) {
	r := NewResolver(Options{
		ExtraFamilies: map[string][]string{
			"suresh": {"sureshe", "soresh"},
		},
	})

	assert.True(t, r.AreVariants("Suresh Kumar", "Soresh Kumar"))
	assert.Equal(t, "suresh", r.CanonicalForm("sureshe"))

	// Built-ins still apply.
	assert.True(t, r.AreVariants("Mohamed", "Mohammed"))

	// The default resolver is unaffected.
	assert.False(t, AreVariants("Suresh", "Soresh"))
}

func TestNewResolver_CustomScores(t *testing.T) {
	r := NewResolver(Options{Scores: Scores{Canonical: 0.8, Variant: 0.6}})

	got := r.Compare("Mohammed", "Mohamed")
	assert.InDelta(t, 0.8, got.Confidence, 1e-9)

	got = r.Compare("Ahmad Smith", "Ahmed Jones")
	assert.InDelta(t, 0.6, got.Confidence, 1e-9)
}
