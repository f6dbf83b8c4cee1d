package g2p_test

import (
	"reflect"
	"testing"

	"github.com/veloxvoice/g2p/pkg/g2p"
)

func TestPreprocessPlainText(t *testing.T) {
	t.Parallel()

	cleaned, tokens, features := g2p.Preprocess("  Hello there  ")
	if cleaned != "Hello there" {
		t.Errorf("cleaned=%q, want %q", cleaned, "Hello there")
	}
	if want := []string{"Hello", "there"}; !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens=%v, want %v", tokens, want)
	}
	if len(features) != 0 {
		t.Errorf("features=%v, want none", features)
	}
}

func TestPreprocessOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		cleaned string
		tokens  []string
		index   int
		want    g2p.Feature
	}{
		{
			name:    "phoneme override",
			in:      "[Kokoro](/kˈOkəɹO/) speaks",
			cleaned: "Kokoro speaks",
			tokens:  []string{"Kokoro", "speaks"},
			index:   0,
			want:    g2p.Feature{Kind: g2p.FeaturePhonemes, Phonemes: "kˈOkəɹO"},
		},
		{
			name:    "negative half stress",
			in:      "so [well](-0.5) done",
			cleaned: "so well done",
			tokens:  []string{"so", "well", "done"},
			index:   1,
			want:    g2p.Feature{Kind: g2p.FeatureStress, Stress: -0.5},
		},
		{
			name:    "integer stress",
			in:      "[loud](2)",
			cleaned: "loud",
			tokens:  []string{"loud"},
			index:   0,
			want:    g2p.Feature{Kind: g2p.FeatureStress, Stress: 2},
		},
		{
			name:    "number flags",
			in:      "[1500](#n#)",
			cleaned: "1500",
			tokens:  []string{"1500"},
			index:   0,
			want:    g2p.Feature{Kind: g2p.FeatureFlags, Flags: "n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, tokens, features := g2p.Preprocess(tt.in)
			if cleaned != tt.cleaned {
				t.Errorf("cleaned=%q, want %q", cleaned, tt.cleaned)
			}
			if !reflect.DeepEqual(tokens, tt.tokens) {
				t.Errorf("tokens=%v, want %v", tokens, tt.tokens)
			}
			got, ok := features[tt.index]
			if !ok || got != tt.want {
				t.Errorf("features[%d]=(%+v, %v), want (%+v, true)", tt.index, got, ok, tt.want)
			}
		})
	}
}

func TestPreprocessSpannedSurfaceStaysOneToken(t *testing.T) {
	t.Parallel()

	cleaned, tokens, _ := g2p.Preprocess("[New York](/njˌuːjˈɔːk/)")
	if cleaned != "New York" {
		t.Errorf("cleaned=%q, want %q", cleaned, "New York")
	}
	if len(tokens) != 1 || tokens[0] != "New York" {
		t.Errorf("tokens=%v, want the multi-word surface as one token", tokens)
	}
}

func TestPreprocessMalformedPayloadIgnored(t *testing.T) {
	t.Parallel()

	cleaned, tokens, features := g2p.Preprocess("[word](xyz)")
	if cleaned != "word" {
		t.Errorf("cleaned=%q, want %q", cleaned, "word")
	}
	if len(tokens) != 1 || tokens[0] != "word" {
		t.Errorf("tokens=%v, want [word]", tokens)
	}
	if len(features) != 0 {
		t.Errorf("features=%v, want none", features)
	}
}
