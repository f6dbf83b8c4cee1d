package lexicon

import (
	"strings"
	"unicode"

	"github.com/veloxvoice/g2p/pkg/phoneme"
)

// IsKnown reports whether word can be resolved by [Lexicon.Get]: it is in the
// gold or silver dictionary or the closed symbol table, or is a single
// character, or is an all-uppercase word whose lowercase form is in gold, or
// looks like an acronym (every character after the first is uppercase).
func (l *Lexicon) IsKnown(word, tag string) bool {
	if _, ok := l.golds[word]; ok {
		return true
	}
	if _, ok := symbols[word]; ok {
		return true
	}
	if _, ok := l.silvers[word]; ok {
		return true
	}
	if !isAlpha(word) {
		return false
	}
	runes := []rune(word)
	if len(runes) == 1 {
		return true
	}
	if word == strings.ToUpper(word) {
		if _, ok := l.golds[strings.ToLower(word)]; ok {
			return true
		}
	}
	rest := string(runes[1:])
	return rest == strings.ToUpper(rest)
}

// Pronounce resolves word the way the engine does: words carrying
// capitalisation but no explicit stress get the default stress for their
// casing class before lookup.
func (l *Lexicon) Pronounce(word, tag string, stress *float64, ctx Context) (string, int, bool) {
	if stress == nil && word != strings.ToLower(word) {
		if word == strings.ToUpper(word) {
			stress = stressOf(capStresses[1])
		} else {
			stress = stressOf(capStresses[0])
		}
	}
	return l.Get(word, tag, stress, ctx)
}

// Get looks word up and returns its phoneme string and confidence rating.
// Closed-class special cases are checked first, then direct dictionary
// lookup (with possessive-apostrophe repair), then morphological stemming.
// ok is false when the word cannot be resolved at all.
func (l *Lexicon) Get(word, tag string, stress *float64, ctx Context) (ps string, rating int, ok bool) {
	if ps, rating, ok = l.specialCase(word, tag, stress, ctx); ok {
		return ps, rating, true
	}
	if l.IsKnown(word, tag) {
		return l.lookupKnown(word, tag, stress, ctx)
	}
	if strings.HasSuffix(word, "s'") && l.IsKnown(word[:len(word)-2]+"'s", tag) {
		return l.lookupKnown(word[:len(word)-2]+"'s", tag, stress, ctx)
	}
	if strings.HasSuffix(word, "'") && l.IsKnown(strings.TrimSuffix(word, "'"), tag) {
		return l.lookupKnown(strings.TrimSuffix(word, "'"), tag, stress, ctx)
	}
	if ps, rating, ok = l.stemS(word, tag, stress, ctx); ok {
		return ps, rating, true
	}
	if ps, rating, ok = l.stemEd(word, tag, stress, ctx); ok {
		return ps, rating, true
	}
	if ps, rating, ok = l.stemIng(word, tag, stress, ctx); ok {
		return ps, rating, true
	}
	return "", 0, false
}

// lookupKnown performs the tiered dictionary search. All-uppercase words that
// are not themselves gold entries are redirected to their lowercase form; when
// the tag is NNP that redirect forces the proper-noun path, which skips the
// silver tier and requires a primary stress mark in the result. Anything the
// search cannot satisfy falls back to letter-by-letter spell-out.
func (l *Lexicon) lookupKnown(word, tag string, stress *float64, ctx Context) (string, int, bool) {
	properNoun := false
	w := word
	if _, inGold := l.golds[w]; !inGold && w == strings.ToUpper(w) {
		w = strings.ToLower(w)
		properNoun = tag == "NNP"
	}

	var ps string
	var rating int
	found := false
	if e, ok := l.golds[w]; ok {
		ps, found = e.Select(tag, ctx.FutureVowel == nil)
		rating = 4
	}
	if !found && !properNoun {
		if e, ok := l.silvers[w]; ok {
			ps, found = e.Select(tag, ctx.FutureVowel == nil)
			rating = 3
		}
	}

	if !found || ps == "" || (properNoun && !strings.ContainsRune(ps, phoneme.PrimaryStress)) {
		return l.SpellOut(word)
	}
	return ApplyStress(ps, stress), rating, true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
