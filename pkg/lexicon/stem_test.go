package lexicon_test

import (
	"testing"

	"github.com/veloxvoice/g2p/pkg/lexicon"
)

func TestStemming(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	tests := []struct {
		name string
		word string
		tag  string
		want string
	}{
		{"plural s", "dogs", "NNS", "dˈɔɡz"},
		{"plural after voiceless stop", "cats", "NNS", "kˈæts"},
		{"past tense", "looked", "VBD", "lˈʊkt"},
		{"gerund with doubled consonant", "running", "VBG", "ɹˈʌnɪŋ"},
		{"gerund with dropped e", "using", "VBG", "jˈuzɪŋ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := l.Get(tt.word, tt.tag, nil, lexicon.Context{})
			if !ok || got != tt.want {
				t.Errorf("Get(%q)=(%q, %v), want (%q, true)", tt.word, got, ok, tt.want)
			}
		})
	}
}

func TestAppendS(t *testing.T) {
	t.Parallel()

	us := newLexicon(t, lexicon.US)
	gb := newLexicon(t, lexicon.GB)

	tests := []struct{ ps, want string }{
		{"kˈæt", "kˈæts"},  // voiceless stop takes /s/
		{"dˈɔɡ", "dˈɔɡz"},  // voiced takes /z/
		{"bˈʌs", "bˈʌsᵻz"}, // sibilant takes a linking vowel
	}
	for _, tt := range tests {
		if got := us.AppendS(tt.ps); got != tt.want {
			t.Errorf("US AppendS(%q)=%q, want %q", tt.ps, got, tt.want)
		}
	}
	if got := gb.AppendS("bˈʌs"); got != "bˈʌsɪz" {
		t.Errorf("GB AppendS(bˈʌs)=%q, want bˈʌsɪz", got)
	}
}

func TestAppendEd(t *testing.T) {
	t.Parallel()

	us := newLexicon(t, lexicon.US)
	gb := newLexicon(t, lexicon.GB)

	tests := []struct{ ps, want string }{
		{"lˈʊk", "lˈʊkt"},    // voiceless consonant takes /t/
		{"lˈʌv", "lˈʌvd"},    // voiced takes /d/
		{"nˈid", "nˈidᵻd"},   // d-final takes a linking vowel
		{"wˈAt", "wˈAɾᵻd"},   // US flaps a t after a tap vowel
		{"lˈɪft", "lˈɪftᵻd"}, // no flap after a consonant
	}
	for _, tt := range tests {
		if got := us.AppendEd(tt.ps); got != tt.want {
			t.Errorf("US AppendEd(%q)=%q, want %q", tt.ps, got, tt.want)
		}
	}
	if got := gb.AppendEd("wˈAt"); got != "wˈAtɪd" {
		t.Errorf("GB AppendEd(wˈAt)=%q, want wˈAtɪd", got)
	}
}

func TestAppendIng(t *testing.T) {
	t.Parallel()

	us := newLexicon(t, lexicon.US)
	gb := newLexicon(t, lexicon.GB)

	if got, ok := us.AppendIng("ɹˈʌn"); !ok || got != "ɹˈʌnɪŋ" {
		t.Errorf("US AppendIng(ɹˈʌn)=(%q, %v), want (ɹˈʌnɪŋ, true)", got, ok)
	}
	if got, ok := us.AppendIng("wˈAt"); !ok || got != "wˈAɾɪŋ" {
		t.Errorf("US AppendIng(wˈAt)=(%q, %v), want (wˈAɾɪŋ, true)", got, ok)
	}
	// GB refuses stems that end in a bare schwa.
	if got, ok := gb.AppendIng("bˈɛtə"); ok {
		t.Errorf("GB AppendIng(bˈɛtə)=(%q, true), want rejection", got)
	}
	if got, ok := gb.AppendIng("ɹˈʌn"); !ok || got != "ɹˈʌnɪŋ" {
		t.Errorf("GB AppendIng(ɹˈʌn)=(%q, %v), want (ɹˈʌnɪŋ, true)", got, ok)
	}
}
