package lexicon

import (
	"strings"

	"github.com/veloxvoice/g2p/pkg/phoneme"
)

// stemS resolves a plural or third-person -s form by stripping the suffix,
// looking up the stem, and appending the phonologically correct /s z ᵻz/
// ending.
func (l *Lexicon) stemS(word, tag string, stress *float64, ctx Context) (string, int, bool) {
	if len(word) < 3 || !strings.HasSuffix(word, "s") {
		return "", 0, false
	}
	var stem string
	switch {
	case !strings.HasSuffix(word, "ss") && l.IsKnown(word[:len(word)-1], tag):
		stem = word[:len(word)-1]
	case (strings.HasSuffix(word, "'s") || (len(word) > 4 && strings.HasSuffix(word, "es") && !strings.HasSuffix(word, "ies"))) &&
		l.IsKnown(word[:len(word)-2], tag):
		stem = word[:len(word)-2]
	case len(word) > 4 && strings.HasSuffix(word, "ies") && l.IsKnown(word[:len(word)-3]+"y", tag):
		stem = word[:len(word)-3] + "y"
	default:
		return "", 0, false
	}
	ps, rating, ok := l.Get(stem, tag, stress, ctx)
	if !ok {
		return "", 0, false
	}
	return l.AppendS(ps), rating, true
}

// stemEd resolves a past-tense -ed form via its stem.
func (l *Lexicon) stemEd(word, tag string, stress *float64, ctx Context) (string, int, bool) {
	if len(word) < 4 || !strings.HasSuffix(word, "d") {
		return "", 0, false
	}
	var stem string
	switch {
	case !strings.HasSuffix(word, "dd") && l.IsKnown(word[:len(word)-1], tag):
		stem = word[:len(word)-1]
	case len(word) > 4 && strings.HasSuffix(word, "ed") && !strings.HasSuffix(word, "eed") &&
		l.IsKnown(word[:len(word)-2], tag):
		stem = word[:len(word)-2]
	default:
		return "", 0, false
	}
	ps, rating, ok := l.Get(stem, tag, stress, ctx)
	if !ok {
		return "", 0, false
	}
	return l.AppendEd(ps), rating, true
}

// stemIng resolves a gerund -ing form via its stem, undoing the dropped-e and
// doubled-consonant spelling changes.
func (l *Lexicon) stemIng(word, tag string, stress *float64, ctx Context) (string, int, bool) {
	if len(word) < 5 || !strings.HasSuffix(word, "ing") {
		return "", 0, false
	}
	var stem string
	switch {
	case len(word) > 5 && l.IsKnown(word[:len(word)-3], tag):
		stem = word[:len(word)-3]
	case l.IsKnown(word[:len(word)-3]+"e", tag):
		stem = word[:len(word)-3] + "e"
	case len(word) > 5 && word[len(word)-4] == word[len(word)-5] && l.IsKnown(word[:len(word)-4], tag):
		stem = word[:len(word)-4]
	default:
		return "", 0, false
	}
	ps, rating, ok := l.Get(stem, tag, stress, ctx)
	if !ok {
		return "", 0, false
	}
	out, ok := l.AppendIng(ps)
	if !ok {
		return "", 0, false
	}
	return out, rating, true
}

// AppendS appends the -s suffix to a stem's phonemes: /s/ after voiceless
// stops and fricatives, a reduced vowel plus /z/ after sibilants, /z/
// otherwise.
func (l *Lexicon) AppendS(ps string) string {
	if ps == "" {
		return ""
	}
	switch last := lastRune(ps); {
	case strings.ContainsRune("ptkfθ", last):
		return ps + "s"
	case strings.ContainsRune("szʃʒʧʤ", last):
		if l.dialect == GB {
			return ps + "ɪz"
		}
		return ps + "ᵻz"
	}
	return ps + "z"
}

// AppendEd appends the -ed suffix: /t/ after voiceless consonants, a reduced
// vowel plus /d/ after /d/-final stems, /d/ otherwise. American English flaps
// a stem-final /t/ after the tap-triggering vowel class.
func (l *Lexicon) AppendEd(ps string) string {
	if ps == "" {
		return ""
	}
	runes := []rune(ps)
	last := runes[len(runes)-1]
	switch {
	case strings.ContainsRune("pkfθʃsʧ", last):
		return ps + "t"
	case last == 'd':
		if l.dialect == GB {
			return ps + "ɪd"
		}
		return ps + "ᵻd"
	case last != 't':
		return ps + "d"
	case l.dialect == GB || len(runes) < 2:
		return ps + "ɪd"
	case phoneme.IsUSTapVowel(runes[len(runes)-2]):
		return string(runes[:len(runes)-1]) + "ɾᵻd"
	}
	return ps + "ᵻd"
}

// AppendIng appends the -ing suffix. British English rejects stems ending in
// a plain schwa or long vowel; American English flaps a stem-final /t/ after
// the tap-triggering vowel class.
func (l *Lexicon) AppendIng(ps string) (string, bool) {
	if ps == "" {
		return "", false
	}
	runes := []rune(ps)
	last := runes[len(runes)-1]
	if l.dialect == GB {
		if strings.ContainsRune("əː", last) {
			return "", false
		}
		return ps + "ɪŋ", true
	}
	if len(runes) >= 2 && last == 't' && phoneme.IsUSTapVowel(runes[len(runes)-2]) {
		return string(runes[:len(runes)-1]) + "ɾɪŋ", true
	}
	return ps + "ɪŋ", true
}
