package g2p

import (
	"strings"
	"unicode"

	"github.com/veloxvoice/g2p/pkg/phoneme"
)

// currencies maps spoken currency symbols to their major and minor unit
// names.
var currencies = map[string][2]string{
	"$": {"dollar", "cent"},
	"£": {"pound", "pence"},
	"€": {"euro", "cent"},
}

var punctTagPhonemes = map[string]string{
	"-LRB-": "(",
	"-RRB-": ")",
	"``":    "“",
	"''":    "”",
}

// foldLeft merges every continuation token (IsHead false) into its
// predecessor so that a multi-word override surface travels as one token.
func foldLeft(toks []*Token) []*Token {
	out := make([]*Token, 0, len(toks))
	for _, tk := range toks {
		if !tk.IsHead && len(out) > 0 {
			out[len(out)-1] = mergeTokens([]*Token{out[len(out)-1], tk})
			continue
		}
		out = append(out, tk)
	}
	return out
}

// retokenize derives the words the resolver will walk. Tokens without an
// explicit pronunciation are split into alpha, numeric and symbol pieces,
// punctuation is pronounced in place, currency symbols attach to the
// numeral they precede, and adjacent unspaced pieces are grouped so the
// resolver can try multi-piece lexicon matches.
func retokenize(toks []*Token) []Word {
	var flat []*Token
	var carried []bool
	for _, tk := range toks {
		if tk.Alias == "" && tk.Phonemes == nil {
			pieces := subtokenize(tk)
			for _, p := range pieces {
				flat = append(flat, p)
				carried = append(carried, false)
			}
			continue
		}
		flat = append(flat, tk)
		carried = append(carried, true)
	}

	pendingCurrency := ""
	var words []Word
	for i, tk := range flat {
		if !carried[i] {
			text := tk.Text
			switch {
			case currencyOnly(text):
				pendingCurrency = text
				tk.setPhonemes("", 4)
			case (text == "-" || text == "–") && tk.Tag == ":":
				tk.Text = "—"
				tk.setPhonemes("—", 3)
			case isPunctTag(tk.Tag) && !hasLetter(text):
				tk.setPhonemes(punctPhonemes(tk), 4)
			}

			if pendingCurrency != "" && tk.Text != pendingCurrency {
				if isNumeral(tk.Text) {
					if i+1 >= len(flat) || !isNumeral(flat[i+1].Text) {
						tk.Currency = pendingCurrency
						pendingCurrency = ""
					}
				} else {
					pendingCurrency = ""
				}
			}

			// Bare "2" wedged between letters reads as "to" ("B2B").
			if tk.Text == "2" && i > 0 && i+1 < len(flat) &&
				endsAlnum(flat[i-1].Text) && startsAlnum(flat[i+1].Text) &&
				flat[i-1].Whitespace == "" && tk.Whitespace == "" {
				tk.Alias = "to"
			}
		}

		words = appendToken(words, tk, carried[i])
	}

	for i, w := range words {
		if w.Group != nil && len(w.Group) == 1 {
			words[i] = Word{Single: w.Group[0]}
		}
	}
	return words
}

// appendToken attaches a token either as its own word or to a still-open
// group: a group stays open while its last member carries no whitespace.
func appendToken(words []Word, tk *Token, carriedOver bool) []Word {
	if carriedOver {
		return append(words, Word{Single: tk})
	}
	if n := len(words); n > 0 && words[n-1].Group != nil {
		g := words[n-1].Group
		if g[len(g)-1].Whitespace == "" {
			words[n-1].Group = append(g, tk)
			return words
		}
	}
	if tk.Whitespace == "" {
		return append(words, Word{Group: []*Token{tk}})
	}
	return append(words, Word{Single: tk})
}

// subtokenize splits a token's text into maximal letter runs, digit runs
// (keeping internal commas and decimal points between digits) and single
// symbol characters. Pieces inherit the parent's tag, stress and number
// flags; only the last piece keeps the trailing whitespace. Prespace marks
// alnum/alnum piece boundaries so merged phonemes reinsert a separator.
func subtokenize(tk *Token) []*Token {
	parts := splitPieces(tk.Text)
	if len(parts) <= 1 {
		return []*Token{tk}
	}
	out := make([]*Token, len(parts))
	for j, p := range parts {
		piece := &Token{
			Text:     p,
			Tag:      tk.Tag,
			IsHead:   tk.IsHead && j == 0,
			Stress:   tk.Stress,
			NumFlags: tk.NumFlags,
		}
		if j == len(parts)-1 {
			piece.Whitespace = tk.Whitespace
		}
		if j > 0 && endsAlnum(parts[j-1]) && startsAlnum(p) {
			piece.Prespace = true
		}
		out[j] = piece
	}
	return out
}

func splitPieces(text string) []string {
	var parts []string
	var cur []rune
	mode := 0 // 0 none, 1 letters, 2 digits
	rs := []rune(text)
	flush := func() {
		if len(cur) > 0 {
			parts = append(parts, string(cur))
			cur = nil
		}
	}
	for i, r := range rs {
		switch {
		case isLetter(r):
			if mode != 1 {
				flush()
				mode = 1
			}
			cur = append(cur, r)
		case unicode.IsDigit(r):
			if mode != 2 {
				flush()
				mode = 2
			}
			cur = append(cur, r)
		case (r == ',' || r == '.') && mode == 2 &&
			i+1 < len(rs) && unicode.IsDigit(rs[i+1]):
			cur = append(cur, r)
		default:
			flush()
			mode = 0
			parts = append(parts, string(r))
		}
	}
	flush()
	return parts
}

func punctPhonemes(tk *Token) string {
	if ps, ok := punctTagPhonemes[tk.Tag]; ok {
		return ps
	}
	var b strings.Builder
	for _, r := range tk.Text {
		if strings.ContainsRune(phoneme.Puncts, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var punctTags = map[string]struct{}{
	".": {}, ",": {}, ":": {}, "``": {}, "''": {},
	"-LRB-": {}, "-RRB-": {}, "$": {}, "#": {}, "NFP": {},
}

func isPunctTag(tag string) bool {
	_, ok := punctTags[tag]
	return ok
}

func currencyOnly(text string) bool {
	_, ok := currencies[text]
	return ok
}

func isNumeral(text string) bool {
	has := false
	for _, r := range text {
		if unicode.IsDigit(r) {
			has = true
		} else if r != ',' && r != '.' {
			return false
		}
	}
	return has
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune(apostrophes, r)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func endsAlnum(s string) bool {
	r := lastRuneOf(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func startsAlnum(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

func lastRuneOf(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
