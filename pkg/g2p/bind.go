package g2p

import (
	"strings"

	"github.com/veloxvoice/g2p/pkg/tagger"
)

// bindTokens converts tagger output into engine tokens: whitespace is
// recovered by aligning surfaces against the cleaned text, preprocessor
// features are applied by surface-token index, and contraction splits are
// repaired.
func bindTokens(cleaned string, tagged []tagger.Word, surfaces []string, features map[int]Feature) []*Token {
	toks := make([]*Token, len(tagged))
	for i, w := range tagged {
		ws := " "
		if i == len(tagged)-1 {
			ws = ""
		}
		toks[i] = &Token{Text: w.Text, Tag: w.Tag, Whitespace: ws, IsHead: true}
	}

	realignWhitespace(cleaned, toks)
	if len(features) > 0 {
		applyFeatures(toks, surfaces, features)
	}
	return repairContractions(toks)
}

// realignWhitespace replaces the tagger's assumed single-space layout with
// the whitespace actually present in the cleaned text. Surfaces that cannot
// be located keep their heuristic default.
func realignWhitespace(cleaned string, toks []*Token) {
	pos := 0
	prevEnd := -1
	prev := -1
	for i, tk := range toks {
		idx := strings.Index(cleaned[pos:], tk.Text)
		if idx < 0 {
			continue
		}
		start := pos + idx
		if prev >= 0 {
			// Everything between the previous surface and this one is the
			// previous token's trailing whitespace.
			toks[prev].Whitespace = cleaned[prevEnd:start]
		}
		pos = start + len(tk.Text)
		prevEnd = pos
		prev = i
	}
	if prev >= 0 && prevEnd <= len(cleaned) {
		toks[len(toks)-1].Whitespace = cleaned[prevEnd:]
	}
}

// applyFeatures walks tagger tokens in lockstep with the preprocessor's
// surface tokens (a surface may have been split into several tagger tokens)
// and applies each surface's feature to its constituent tokens. An explicit
// phoneme feature lands on the first constituent; the rest become silent
// continuations so fold-left reunites them.
func applyFeatures(toks []*Token, surfaces []string, features map[int]Feature) {
	si := 0
	consumed := 0
	for _, tk := range toks {
		if si >= len(surfaces) {
			return
		}
		target := stripSpaces(surfaces[si])
		first := consumed == 0
		if f, ok := features[si]; ok {
			applyFeature(tk, f, first)
		}
		consumed += len(tk.Text)
		if consumed >= len(target) {
			si++
			consumed = 0
		}
	}
}

func applyFeature(tk *Token, f Feature, first bool) {
	switch f.Kind {
	case FeatureStress:
		tk.Stress = f64(f.Stress)
	case FeaturePhonemes:
		if first {
			tk.setPhonemes(f.Phonemes, 5)
		} else {
			tk.setPhonemes("", 5)
			tk.IsHead = false
		}
	case FeatureFlags:
		tk.NumFlags = f.Flags
	}
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

const apostrophes = "'‘’"

var contractionSuffixes = map[string]struct{}{
	"s": {}, "t": {}, "d": {}, "m": {}, "re": {}, "ve": {}, "ll": {},
}

// irregularNT maps the irregular n't contractions to the length of their
// retained head ("can't" → "ca" + "n't").
var irregularNT = map[string]int{
	"can't": 2, "won't": 2, "shan't": 3,
}

var regularNT = map[string]struct{}{
	"ain't": {}, "aren't": {}, "couldn't": {}, "didn't": {}, "doesn't": {},
	"don't": {}, "hadn't": {}, "hasn't": {}, "haven't": {}, "isn't": {},
	"mustn't": {}, "needn't": {}, "shouldn't": {}, "wasn't": {},
	"weren't": {}, "wouldn't": {},
}

// repairContractions detects the (WORD, APOSTROPHE, SUFFIX) windows a
// character-level tokenizer produces for English contractions and resplits
// the known ones into exactly two tokens at the apostrophe boundary,
// carrying tag and stress forward. Unrecognized combinations stay as three
// tokens.
func repairContractions(toks []*Token) []*Token {
	out := make([]*Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		if i+2 < len(toks) {
			if head, tail, ok := splitContraction(toks[i], toks[i+1], toks[i+2]); ok {
				out = append(out, head, tail)
				i += 2
				continue
			}
		}
		out = append(out, toks[i])
	}
	return out
}

func splitContraction(w, ap, sfx *Token) (*Token, *Token, bool) {
	if w.Whitespace != "" || ap.Whitespace != "" {
		return nil, nil, false
	}
	if len(ap.Text) == 0 || !strings.ContainsRune(apostrophes, []rune(ap.Text)[0]) || len([]rune(ap.Text)) != 1 {
		return nil, nil, false
	}
	suffix := strings.ToLower(sfx.Text)
	if _, ok := contractionSuffixes[suffix]; !ok {
		return nil, nil, false
	}
	if !isAlphaWord(w.Text) {
		return nil, nil, false
	}

	var headText, tailText string
	if suffix == "t" {
		full := strings.ToLower(w.Text) + "'t"
		if headLen, ok := irregularNT[full]; ok {
			headText, tailText = w.Text[:headLen], "n't"
		} else if _, ok := regularNT[full]; ok && strings.HasSuffix(strings.ToLower(w.Text), "n") {
			headText, tailText = w.Text[:len(w.Text)-1], "n't"
		} else {
			return nil, nil, false
		}
	} else {
		headText, tailText = w.Text, "'"+sfx.Text
	}

	head := &Token{Text: headText, Tag: w.Tag, IsHead: true, Stress: w.Stress}
	tail := &Token{Text: tailText, Tag: sfx.Tag, Whitespace: sfx.Whitespace, IsHead: true, Stress: w.Stress}
	return head, tail, true
}

func isAlphaWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}
