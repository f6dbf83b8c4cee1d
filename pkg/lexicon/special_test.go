package lexicon_test

import (
	"testing"

	"github.com/veloxvoice/g2p/pkg/lexicon"
)

func TestSpecialCaseArticles(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	tests := []struct {
		name string
		word string
		tag  string
		ctx  lexicon.Context
		want string
	}{
		{"a as determiner", "a", "DT", lexicon.Context{}, "ɐ"},
		{"a as letter", "a", "NN", lexicon.Context{}, "ˈA"},
		{"an", "an", "DT", lexicon.Context{}, "ɐn"},
		{"the before consonant", "the", "DT", lexicon.Context{FutureVowel: vowel(false)}, "ðə"},
		{"the before vowel", "the", "DT", lexicon.Context{FutureVowel: vowel(true)}, "ði"},
		{"the with unknown context", "the", "DT", lexicon.Context{}, "ðə"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rating, ok := l.Get(tt.word, tt.tag, nil, tt.ctx)
			if !ok || got != tt.want || rating != 4 {
				t.Errorf("Get(%q, %q)=(%q, %d, %v), want (%q, 4, true)", tt.word, tt.tag, got, rating, ok, tt.want)
			}
		})
	}
}

func TestSpecialCaseTo(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	tests := []struct {
		name string
		ctx  lexicon.Context
		want string
	}{
		{"unknown context keeps full form", lexicon.Context{}, "tˈu"},
		{"before vowel", lexicon.Context{FutureVowel: vowel(true)}, "tʊ"},
		{"before consonant", lexicon.Context{FutureVowel: vowel(false)}, "tə"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := l.Get("to", "TO", nil, tt.ctx)
			if !ok || got != tt.want {
				t.Errorf("Get(to)=(%q, %v), want (%q, true)", got, ok, tt.want)
			}
		})
	}
}

func TestSpecialCaseInAndI(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	full, _, ok := l.Get("in", "IN", nil, lexicon.Context{})
	if !ok || full != "ˈɪn" {
		t.Errorf("Get(in, unknown context)=(%q, %v), want (ˈɪn, true)", full, ok)
	}
	reduced, _, ok := l.Get("in", "IN", nil, lexicon.Context{FutureVowel: vowel(false)})
	if !ok || reduced != "ɪn" {
		t.Errorf("Get(in, known context)=(%q, %v), want (ɪn, true)", reduced, ok)
	}

	pronoun, _, ok := l.Get("I", "PRP", nil, lexicon.Context{})
	if !ok || pronoun != "ˌI" {
		t.Errorf("Get(I, PRP)=(%q, %v), want (ˌI, true)", pronoun, ok)
	}
}

func TestSpecialCaseUsed(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	habitual, _, ok := l.Get("used", "VBD", nil, lexicon.Context{FutureTo: true})
	if !ok || habitual != "jˈust" {
		t.Errorf(`Get(used, VBD, future "to")=(%q, %v), want (jˈust, true)`, habitual, ok)
	}
	past, _, ok := l.Get("used", "VBD", nil, lexicon.Context{})
	if !ok || past != "jˈuzd" {
		t.Errorf("Get(used, VBD)=(%q, %v), want (jˈuzd, true)", past, ok)
	}
}

func TestSpecialCaseSymbols(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	tests := []struct{ word, want string }{
		{"%", "pəɹsˈɛnt"},
		{"&", "ænd"},
		{"+", "plˈʌs"},
		{"@", "æt"},
	}
	for _, tt := range tests {
		got, _, ok := l.Get(tt.word, "SYM", nil, lexicon.Context{})
		if !ok || got != tt.want {
			t.Errorf("Get(%q)=(%q, %v), want (%q, true)", tt.word, got, ok, tt.want)
		}
	}
}

func TestSpecialCaseVersus(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	for _, w := range []string{"vs", "vs.", "Vs.", "VS"} {
		got, _, ok := l.Get(w, "IN", nil, lexicon.Context{})
		if !ok || got != "vˈɜɹsəs" {
			t.Errorf("Get(%q, IN)=(%q, %v), want (vˈɜɹsəs, true)", w, got, ok)
		}
	}
}

func TestDottedAbbreviationSpellsOut(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	got, rating, ok := l.Get("U.S.", "NNP", nil, lexicon.Context{})
	if !ok || rating != 3 {
		t.Fatalf("Get(U.S.)=(%q, %d, %v), want rating 3", got, rating, ok)
	}
	if got != "jˌuˈɛs" {
		t.Errorf("Get(U.S.)=%q, want %q", got, "jˌuˈɛs")
	}
}
