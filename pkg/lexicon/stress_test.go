package lexicon_test

import (
	"strings"
	"testing"

	"github.com/veloxvoice/g2p/pkg/lexicon"
)

func TestApplyStress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ps     string
		stress *float64
		want   string
	}{
		{"nil leaves untouched", "həlˈO", nil, "həlˈO"},
		{"below -1 strips all marks", "ˌhəlˈO", stress(-2), "həlO"},
		{"-1 demotes primary", "həlˈO", stress(-1), "həlˌO"},
		{"0 demotes primary", "həlˈO", stress(0), "həlˌO"},
		{"-0.5 demotes primary", "həlˈO", stress(-0.5), "həlˌO"},
		{"0.5 marks unmarked word", "ɐm", stress(0.5), "ˌɐm"},
		{"0.5 keeps existing primary", "həlˈO", stress(0.5), "həlˈO"},
		{"1 promotes lone secondary", "ˌI", stress(1), "ˈI"},
		{"2 marks unmarked word primary", "ɐm", stress(2), "ˈɐm"},
		{"2 keeps existing primary", "həlˈO", stress(2), "həlˈO"},
		{"no vowel is never marked", "st", stress(0.5), "st"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lexicon.ApplyStress(tt.ps, tt.stress); got != tt.want {
				t.Errorf("ApplyStress(%q)=%q, want %q", tt.ps, got, tt.want)
			}
		})
	}
}

func TestApplyStressStripIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, ps := range []string{"həlˈO", "ˌæbsəlˈut", "wˈɜɹld", "st"} {
		once := lexicon.ApplyStress(ps, stress(-2))
		twice := lexicon.ApplyStress(once, stress(-2))
		if once != twice {
			t.Errorf("stripping %q twice gave %q then %q", ps, once, twice)
		}
		if strings.ContainsAny(once, "ˈˌ") {
			t.Errorf("ApplyStress(%q, -2)=%q still contains stress marks", ps, once)
		}
	}
}

func TestRestress(t *testing.T) {
	t.Parallel()

	tests := []struct{ ps, want string }{
		// A leading mark slides rightward to sit before the first vowel.
		{"ˌhəlO", "hˌəlO"},
		{"ˈstɹIk", "stɹˈIk"},
		// A mark already before its vowel stays put.
		{"hˈɛlO", "hˈɛlO"},
	}
	for _, tt := range tests {
		if got := lexicon.Restress(tt.ps); got != tt.want {
			t.Errorf("Restress(%q)=%q, want %q", tt.ps, got, tt.want)
		}
	}
}
