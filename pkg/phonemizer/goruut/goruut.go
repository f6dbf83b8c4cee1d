// Package goruut implements [phonemizer.Phonemizer] on top of the embedded
// goruut phonemizer, which ships its own per-language dictionaries and
// models. No network access or external binaries are involved.
package goruut

import (
	"context"
	"fmt"
	"strings"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"
)

// languages maps the engine's lowercase language codes to the names goruut
// expects.
var languages = map[string]string{
	"de": "German",
	"es": "Spanish",
	"fr": "French",
	"it": "Italian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"pl": "Polish",
	"ru": "Russian",
	"cs": "Czech",
	"sv": "Swedish",
	"fi": "Finnish",
	"tr": "Turkish",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "ChineseMandarin",
	"hi": "Hindi",
	"ar": "Arabic",
	"el": "Greek",
	"hu": "Hungarian",
	"uk": "Ukrainian",
}

// Phonemizer delegates to the embedded goruut library. Safe for concurrent
// use.
type Phonemizer struct {
	p *lib.Phonemizer
}

// New constructs a Phonemizer with goruut's default configuration.
func New() *Phonemizer {
	return &Phonemizer{p: lib.NewPhonemizer(nil)}
}

// Supports reports whether language maps to a goruut language model.
func (g *Phonemizer) Supports(language string) bool {
	_, ok := languages[strings.ToLower(language)]
	return ok
}

// Phonemize converts text to a space-separated phoneme string.
func (g *Phonemizer) Phonemize(_ context.Context, language, text string) (string, error) {
	name, ok := languages[strings.ToLower(language)]
	if !ok {
		return "", fmt.Errorf("goruut: unsupported language %q", language)
	}

	resp := g.p.Sentence(requests.PhonemizeSentence{
		Language: name,
		Sentence: text,
	})

	var b strings.Builder
	for i, word := range resp.Words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word.Phonetic)
	}
	return b.String(), nil
}
