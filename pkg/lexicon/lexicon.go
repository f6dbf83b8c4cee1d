// Package lexicon implements the word-to-phoneme dictionary layer of the G2P
// engine: two confidence-tiered dictionaries (gold and silver), tag-conditioned
// entry selection, closed-class special cases, letter-by-letter spell-out for
// proper nouns, morphological stemming, and stress application.
//
// A Lexicon is immutable after construction and safe for concurrent use.
package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
)

// ErrVocabularyLoad is returned (wrapped) when a dictionary file is missing or
// cannot be parsed. A Lexicon is never constructed in that case.
var ErrVocabularyLoad = errors.New("lexicon: vocabulary load failed")

// Dialect selects the English pronunciation variant.
type Dialect string

const (
	// US selects American English suffix phonology and number reading.
	US Dialect = "us"

	// GB selects British English suffix phonology and number reading.
	GB Dialect = "gb"
)

// IsValid reports whether d is a recognised dialect.
func (d Dialect) IsValid() bool { return d == US || d == GB }

// Context carries the right-to-left resolution context consumed by lookups.
// It describes the token that follows (in reading order) the one being
// resolved.
type Context struct {
	// FutureVowel is nil when unknown, otherwise reports whether the next
	// phoneme-bearing token starts with a vowel sound.
	FutureVowel *bool

	// FutureTo reports whether the next token is a form of "to".
	FutureTo bool
}

// Entry is a single dictionary value: either a direct phoneme string or a
// mapping from POS tag (plus the "None" and "DEFAULT" sentinels) to phoneme
// strings.
type Entry struct {
	Direct string
	ByTag  map[string]string
}

// UnmarshalJSON accepts either a JSON string or a JSON object of
// tag → phoneme string.
func (e *Entry) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &e.Direct)
	}
	return json.Unmarshal(b, &e.ByTag)
}

// Select resolves the entry for the given POS tag. For tag-conditioned
// entries the priority is: exact tag match, then the "None" sentinel when the
// future-vowel context is unknown, then the tag's broad category
// (VERB/NOUN/ADV/ADJ), then "DEFAULT".
func (e Entry) Select(tag string, vowelUnknown bool) (string, bool) {
	if e.ByTag == nil {
		return e.Direct, true
	}
	if ps, ok := e.ByTag[tag]; ok {
		return ps, true
	}
	if vowelUnknown {
		if ps, ok := e.ByTag["None"]; ok {
			return ps, true
		}
	}
	if parent := ParentTag(tag); parent != "" {
		if ps, ok := e.ByTag[parent]; ok {
			return ps, true
		}
	}
	ps, ok := e.ByTag["DEFAULT"]
	return ps, ok
}

// ParentTag maps a Penn POS tag to its broad category key, or "" when the tag
// has none.
func ParentTag(tag string) string {
	switch {
	case strings.HasPrefix(tag, "VB"):
		return "VERB"
	case strings.HasPrefix(tag, "NN"):
		return "NOUN"
	case strings.HasPrefix(tag, "RB"), strings.HasPrefix(tag, "ADV"):
		return "ADV"
	case strings.HasPrefix(tag, "JJ"), strings.HasPrefix(tag, "ADJ"):
		return "ADJ"
	}
	return ""
}

// Lexicon holds the loaded dictionaries. Immutable after construction.
type Lexicon struct {
	dialect Dialect
	golds   map[string]Entry
	silvers map[string]Entry
}

// capStresses are the default stress levels applied to words that carry
// capitalisation but no explicit stress override: index 0 for Capitalized
// words, index 1 for ALL-UPPERCASE words.
var capStresses = [2]float64{0.5, 2}

// LoadFiles constructs a Lexicon from the two JSON dictionary files. Both
// files are loaded concurrently; a missing or unparsable file fails
// construction with an error wrapping [ErrVocabularyLoad].
func LoadFiles(goldPath, silverPath string, dialect Dialect) (*Lexicon, error) {
	if !dialect.IsValid() {
		return nil, fmt.Errorf("lexicon: unknown dialect %q", dialect)
	}

	var golds, silvers map[string]Entry
	var g errgroup.Group
	g.Go(func() error {
		var err error
		golds, err = loadDictFile(goldPath)
		return err
	})
	g.Go(func() error {
		var err error
		silvers, err = loadDictFile(silverPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVocabularyLoad, err)
	}
	return newLexicon(golds, silvers, dialect), nil
}

func loadDictFile(path string) (map[string]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d map[string]Entry
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return d, nil
}

func newLexicon(golds, silvers map[string]Entry, dialect Dialect) *Lexicon {
	growDictionary(golds)
	growDictionary(silvers)
	return &Lexicon{dialect: dialect, golds: golds, silvers: silvers}
}

// growDictionary adds the missing case variant for every entry: a lowercase
// key gains its Capitalized twin and vice versa. Dictionary files only need
// to carry one form.
func growDictionary(d map[string]Entry) {
	grown := make(map[string]Entry, len(d))
	for word, entry := range d {
		if len([]rune(word)) < 2 {
			continue
		}
		lower := strings.ToLower(word)
		switch word {
		case lower:
			grown[capitalize(word)] = entry
		case capitalize(lower):
			grown[lower] = entry
		}
	}
	for word, entry := range grown {
		if _, ok := d[word]; !ok {
			d[word] = entry
		}
	}
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Dialect returns the dialect the lexicon was loaded for.
func (l *Lexicon) Dialect() Dialect { return l.dialect }

// Words returns every distinct lowercase word in the gold and silver
// dictionaries. Used by [Lexicon.Suggest] to build its candidate pool.
func (l *Lexicon) Words() []string {
	seen := make(map[string]struct{}, len(l.golds)+len(l.silvers))
	for w := range l.golds {
		seen[strings.ToLower(w)] = struct{}{}
	}
	for w := range l.silvers {
		seen[strings.ToLower(w)] = struct{}{}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	return words
}
