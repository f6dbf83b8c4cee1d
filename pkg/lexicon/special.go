package lexicon

import (
	"regexp"
	"strings"

	"github.com/veloxvoice/g2p/pkg/phoneme"
)

// addSymbols are symbol spellings used inside web addresses and similar
// tokens (the tagger marks those ADD).
var addSymbols = map[string]string{
	".": "dot",
	"/": "slash",
}

// symbols are standalone symbol words pronounced by name.
var symbols = map[string]string{
	"%": "percent",
	"&": "and",
	"+": "plus",
	"@": "at",
}

var vsRe = regexp.MustCompile(`(?i)^vs\.?$`)

// specialCase handles the closed-class words whose pronunciation is decided
// by context rather than plain dictionary lookup. ok is false when word is
// not a special case.
func (l *Lexicon) specialCase(word, tag string, stress *float64, ctx Context) (string, int, bool) {
	if tag == "ADD" {
		if name, ok := addSymbols[word]; ok {
			return l.Get(name, tag, stress, ctx)
		}
	}
	if name, ok := symbols[word]; ok {
		return l.Get(name, tag, stress, ctx)
	}
	if isDottedAbbreviation(word) {
		return l.SpellOut(word)
	}

	switch word {
	case "a", "A":
		if tag == "DT" {
			return "ɐ", 4, true
		}
		return "ˈA", 4, true

	case "am", "Am", "AM":
		if strings.HasPrefix(tag, "NN") {
			return l.SpellOut(word)
		}
		if ctx.FutureVowel == nil || word != "am" || (stress != nil && *stress > 0) {
			if ps, ok := l.goldStr("am", tag, ctx); ok {
				return ps, 4, true
			}
		}
		return "ɐm", 4, true

	case "an", "An", "AN":
		if word == "AN" && tag == "NNP" {
			return l.SpellOut(word)
		}
		return "ɐn", 4, true

	case "I":
		if tag == "PRP" {
			return string(phoneme.SecondaryStress) + "I", 4, true
		}

	case "by", "By", "BY":
		if ParentTag(tag) == "ADV" {
			return "bˈI", 4, true
		}

	case "to", "To":
		return l.toForm(ctx), 4, true
	case "TO":
		if tag == "TO" || tag == "IN" {
			return l.toForm(ctx), 4, true
		}

	case "in", "In":
		return inForm(tag, ctx), 4, true
	case "IN":
		if tag != "NNP" {
			return inForm(tag, ctx), 4, true
		}

	case "the", "The":
		return theForm(ctx), 4, true
	case "THE":
		if tag == "DT" {
			return theForm(ctx), 4, true
		}

	case "used", "Used", "USED":
		key := "DEFAULT"
		if (tag == "VBD" || tag == "JJ") && ctx.FutureTo {
			key = "VBD"
		}
		if e, ok := l.golds["used"]; ok && e.ByTag != nil {
			if ps, ok := e.ByTag[key]; ok {
				return ps, 4, true
			}
		}
	}

	if tag == "IN" && vsRe.MatchString(word) {
		return l.Get("versus", tag, stress, ctx)
	}
	return "", 0, false
}

// toForm selects the pronunciation of "to" from the upcoming-vowel state:
// the full form when unknown, the reduced schwa form before a consonant, and
// the ʊ form before a vowel.
func (l *Lexicon) toForm(ctx Context) string {
	switch {
	case ctx.FutureVowel == nil:
		if ps, ok := l.goldStr("to", "TO", ctx); ok {
			return ps
		}
		return "tˈu"
	case *ctx.FutureVowel:
		return "tʊ"
	}
	return "tə"
}

func inForm(tag string, ctx Context) string {
	if ctx.FutureVowel == nil || tag != "IN" {
		return string(phoneme.PrimaryStress) + "ɪn"
	}
	return "ɪn"
}

func theForm(ctx Context) string {
	if ctx.FutureVowel != nil && *ctx.FutureVowel {
		return "ði"
	}
	return "ðə"
}

// goldStr fetches a gold entry and resolves it for tag, ignoring case
// expansion and stress.
func (l *Lexicon) goldStr(word, tag string, ctx Context) (string, bool) {
	e, ok := l.golds[word]
	if !ok {
		return "", false
	}
	return e.Select(tag, ctx.FutureVowel == nil)
}

// isDottedAbbreviation reports whether word is a dotted abbreviation such as
// "U.S." or "e.g.": letters only once the dots are removed, with every
// dot-separated segment at most two letters long.
func isDottedAbbreviation(word string) bool {
	trimmed := strings.Trim(word, ".")
	if !strings.Contains(trimmed, ".") {
		return false
	}
	if !isAlpha(strings.ReplaceAll(word, ".", "")) {
		return false
	}
	for _, seg := range strings.Split(trimmed, ".") {
		if len([]rune(seg)) > 2 {
			return false
		}
	}
	return true
}
