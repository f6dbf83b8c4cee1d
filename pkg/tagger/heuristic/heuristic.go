// Package heuristic provides the built-in [tagger.Tagger] implementation: a
// dependency-free Penn-tag tagger using a closed-class lexicon, suffix
// heuristics, and a contextual repair pass.
//
// It is deliberately simple. The engine only conditions on broad tag
// categories plus a handful of closed-class tags (DT, IN, TO, MD, NNP and the
// punctuation tags), all of which this tagger gets right for ordinary prose.
package heuristic

import (
	"context"
	"strings"
	"unicode"

	"github.com/veloxvoice/g2p/pkg/tagger"
)

// Tagger tags tokens with Penn Treebank tags. Safe for concurrent use; the
// lexicon is read-only after construction.
type Tagger struct {
	lexicon map[string]string
}

// New returns a Tagger loaded with the default closed-class lexicon.
func New() *Tagger {
	return &Tagger{lexicon: defaultLexicon()}
}

// Tag splits text into surface tokens (letter runs, number runs, and single
// punctuation characters) and assigns each a Penn tag.
func (t *Tagger) Tag(_ context.Context, text string) ([]tagger.Word, error) {
	surfaces := split(text)
	words := make([]tagger.Word, len(surfaces))

	openQuote := false
	for i, s := range surfaces {
		words[i] = tagger.Word{Text: s, Tag: t.baseline(s, &openQuote)}
	}

	// Contextual repair: a second pass fixing the most common
	// noun/verb confusions from the neighbouring tag.
	for i := 1; i < len(words); i++ {
		prev := words[i-1]
		switch {
		case (prev.Tag == "DT" || prev.Tag == "JJ") && strings.HasPrefix(words[i].Tag, "VB"):
			words[i].Tag = "NN"
		case prev.Tag == "MD" && strings.HasPrefix(words[i].Tag, "NN"):
			words[i].Tag = "VB"
		case prev.Tag == "TO" && words[i].Tag == "NN":
			words[i].Tag = "VB"
		case strings.EqualFold(prev.Text, "of") && strings.HasPrefix(words[i].Tag, "VB"):
			words[i].Tag = "NN"
		}
	}
	return words, nil
}

func (t *Tagger) baseline(s string, openQuote *bool) string {
	r := []rune(s)
	if len(r) == 1 && !unicode.IsLetter(r[0]) && !unicode.IsDigit(r[0]) {
		return punctTag(r[0], openQuote)
	}
	if isNumeric(s) {
		return "CD"
	}
	if tag, ok := t.lexicon[strings.ToLower(s)]; ok {
		// The lexicon stores lowercase keys; "to" and friends keep their
		// closed-class tag regardless of casing.
		return tag
	}
	if unicode.IsUpper(r[0]) {
		return "NNP"
	}
	return suffixTag(strings.ToLower(s))
}

func punctTag(r rune, openQuote *bool) string {
	switch r {
	case '.', '!', '?':
		return "."
	case ',':
		return ","
	case ';', ':', '-', '–', '—', '…':
		return ":"
	case '(', '[', '{':
		return "-LRB-"
	case ')', ']', '}':
		return "-RRB-"
	case '"', '“', '”':
		if *openQuote {
			*openQuote = false
			return "''"
		}
		*openQuote = true
		return "``"
	case '\'', '‘', '’':
		return "''"
	case '$', '£', '€':
		return "$"
	case '#':
		return "#"
	case '%', '&', '+', '@':
		return "SYM"
	}
	return "NFP"
}

func suffixTag(s string) string {
	switch {
	case strings.HasSuffix(s, "ly"):
		return "RB"
	case strings.HasSuffix(s, "ing"):
		return "VBG"
	case strings.HasSuffix(s, "ed"):
		return "VBD"
	case strings.HasSuffix(s, "tion"), strings.HasSuffix(s, "ment"),
		strings.HasSuffix(s, "ness"), strings.HasSuffix(s, "ity"):
		return "NN"
	case strings.HasSuffix(s, "ful"), strings.HasSuffix(s, "less"),
		strings.HasSuffix(s, "ous"), strings.HasSuffix(s, "ive"),
		strings.HasSuffix(s, "able"), strings.HasSuffix(s, "ible"):
		return "JJ"
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss") && len(s) > 3:
		return "NNS"
	}
	return "NN"
}

// isNumeric reports whether s is a digit run, optionally with grouping commas
// and decimal points between digits.
func isNumeric(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == ',' || r == '.':
		default:
			return false
		}
	}
	return hasDigit
}

// split breaks text into maximal letter runs (apostrophe-free), digit runs
// with internal grouping characters, and single other characters. Whitespace
// is discarded; the engine restores it by alignment.
func split(text string) []string {
	var out []string
	r := []rune(text)
	for i := 0; i < len(r); {
		switch {
		case unicode.IsSpace(r[i]):
			i++
		case unicode.IsLetter(r[i]):
			j := i
			for j < len(r) && unicode.IsLetter(r[j]) {
				j++
			}
			out = append(out, string(r[i:j]))
			i = j
		case unicode.IsDigit(r[i]):
			j := i
			for j < len(r) {
				if unicode.IsDigit(r[j]) {
					j++
					continue
				}
				if (r[j] == ',' || r[j] == '.') && j+1 < len(r) && unicode.IsDigit(r[j+1]) {
					j += 2
					continue
				}
				break
			}
			out = append(out, string(r[i:j]))
			i = j
		default:
			out = append(out, string(r[i]))
			i++
		}
	}
	return out
}

func defaultLexicon() map[string]string {
	lex := make(map[string]string, 160)
	add := func(tag string, words ...string) {
		for _, w := range words {
			lex[w] = tag
		}
	}
	add("DT", "the", "a", "an", "this", "that", "these", "those", "some",
		"any", "no", "every", "each", "all", "both")
	add("IN", "in", "on", "at", "for", "with", "by", "from", "of", "about",
		"into", "through", "during", "before", "after", "above", "below",
		"between", "under", "over", "against", "among", "around", "behind",
		"beside", "beyond", "near", "toward", "towards", "upon", "within",
		"without", "across", "along", "inside", "outside", "throughout",
		"because", "although", "while", "if", "unless", "until", "since",
		"whether", "vs")
	add("TO", "to")
	add("MD", "can", "could", "will", "would", "shall", "should", "may",
		"might", "must")
	add("CC", "and", "or", "but", "nor", "yet", "so")
	add("PRP", "i", "you", "he", "she", "it", "we", "they", "me", "him",
		"us", "them", "myself", "yourself", "himself", "herself", "itself",
		"ourselves", "themselves")
	add("PRP$", "my", "your", "his", "her", "its", "our", "their")
	add("WP", "who", "whom", "whose", "which")
	add("WRB", "when", "where", "why", "how")
	add("EX", "there")
	add("RB", "not", "very", "just", "also", "too", "only", "again",
		"never", "always", "now", "then", "here")
	add("UH", "hello", "hi", "oh", "yes")
	add("VB", "be", "have", "do")
	add("VBP", "am", "are")
	add("VBZ", "is", "does", "has")
	add("VBD", "was", "were", "did", "had", "said")
	add("VBN", "been", "done")
	add("VBG", "being")
	return lex
}
