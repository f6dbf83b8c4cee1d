package g2p

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/veloxvoice/g2p/pkg/lexicon"
)

var onesWords = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

var scaleWords = []struct {
	value int64
	name  string
}{
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

// Cardinal spells an integer in British-style English words, with "and"
// before a final sub-hundred remainder.
func Cardinal(n int64) string {
	switch {
	case n < 0:
		return "minus " + Cardinal(-n)
	case n < 20:
		return onesWords[n]
	case n < 100:
		s := tensWords[n/10]
		if n%10 != 0 {
			s += "-" + onesWords[n%10]
		}
		return s
	case n < 1000:
		s := onesWords[n/100] + " hundred"
		if r := n % 100; r != 0 {
			s += " and " + Cardinal(r)
		}
		return s
	}
	for _, sc := range scaleWords {
		if n < sc.value {
			continue
		}
		s := Cardinal(n/sc.value) + " " + sc.name
		switch r := n % sc.value; {
		case r == 0:
		case r < 100:
			s += " and " + Cardinal(r)
		default:
			s += " " + Cardinal(r)
		}
		return s
	}
	return onesWords[0]
}

var ordinalIrregular = map[string]string{
	"one": "first", "two": "second", "three": "third", "five": "fifth",
	"eight": "eighth", "nine": "ninth", "twelve": "twelfth",
}

// Ordinal spells an integer as an ordinal by rewriting the last word of its
// cardinal form.
func Ordinal(n int64) string {
	words := Cardinal(n)
	cut := strings.LastIndexAny(words, " -")
	head, last := "", words
	if cut >= 0 {
		head, last = words[:cut+1], words[cut+1:]
	}
	return head + ordinalWord(last)
}

func ordinalWord(w string) string {
	if o, ok := ordinalIrregular[w]; ok {
		return o
	}
	if strings.HasSuffix(w, "y") {
		return w[:len(w)-1] + "ieth"
	}
	if strings.HasSuffix(w, "t") {
		return w + "h"
	}
	return w + "th"
}

// Year spells a four-digit number the way years are read aloud: paired
// ("nineteen eighty-four"), with "oh" for a 01-09 tail, "hundred" for a
// 00 tail, and plain cardinal for round thousands or out-of-range values.
func Year(n int64) string {
	if n < 1000 || n > 9999 || n%1000 == 0 {
		return Cardinal(n)
	}
	hi, lo := n/100, n%100
	switch {
	case lo == 0:
		return Cardinal(hi) + " hundred"
	case lo < 10:
		return Cardinal(hi) + " oh " + onesWords[lo]
	default:
		return Cardinal(hi) + " " + Cardinal(lo)
	}
}

func digitWords(digits string) string {
	words := make([]string, 0, len(digits))
	for _, r := range digits {
		if r >= '0' && r <= '9' {
			words = append(words, onesWords[r-'0'])
		}
	}
	return strings.Join(words, " ")
}

var numberSuffixes = []string{"ing", "'s", "’s", "ed", "s"}

var ordinalSuffixes = []string{"st", "nd", "rd", "th"}

// isNumberWord reports whether a token text is pronounceable as a number:
// digits with optional grouping commas, decimal points, an ordinal marker
// or a morphological suffix.
func isNumberWord(s string) bool {
	for _, sfx := range numberSuffixes {
		if strings.HasSuffix(s, sfx) {
			s = strings.TrimSuffix(s, sfx)
			break
		}
	}
	for _, sfx := range ordinalSuffixes {
		if strings.HasSuffix(s, sfx) {
			s = strings.TrimSuffix(s, sfx)
			break
		}
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != ',' && r != '.' {
			return false
		}
	}
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// expandNumber turns a numeric token into phonemes by spelling it out and
// pronouncing each spelled word. The reading depends on position and
// punctuation: ordinal markers and four-digit years get their spoken
// forms, attached numbers and dotted sequences fall back to digit or
// segment readings, and currency-bearing numbers are read in units.
func (e *Engine) expandNumber(t *Token, word string, ctx lexicon.Context) (string, int, bool) {
	base := word
	suffix := ""
	for _, sfx := range numberSuffixes {
		if strings.HasSuffix(base, sfx) {
			suffix, base = sfx, strings.TrimSuffix(base, sfx)
			break
		}
	}
	ordinal := false
	for _, sfx := range ordinalSuffixes {
		if strings.HasSuffix(base, sfx) {
			ordinal, base = true, strings.TrimSuffix(base, sfx)
			break
		}
	}
	num := strings.ReplaceAll(base, ",", "")
	if num == "" || !isNumeral(num) {
		return "", 0, false
	}

	words, rating := e.spellNumber(t, num, ordinal)
	if words == "" {
		return "", 0, false
	}
	ps, ok := e.pronounceWords(words, t.Stress, t.NumFlags, ctx)
	if !ok {
		return "", 0, false
	}
	if ps, ok = e.applyNumberSuffix(ps, suffix); !ok {
		return "", 0, false
	}
	return ps, rating, true
}

func (e *Engine) spellNumber(t *Token, num string, ordinal bool) (string, int) {
	dots := strings.Count(num, ".")
	if ordinal {
		if dots > 0 {
			return "", 0
		}
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return "", 0
		}
		return Ordinal(n), 3
	}
	if dots == 0 && len(num) == 4 && t.Currency == "" && t.IsHead {
		n, _ := strconv.ParseInt(num, 10, 64)
		return Year(n), 3
	}
	if !t.IsHead && dots == 0 {
		if len(num) == 3 && !strings.HasSuffix(num, "00") {
			// Attached three-digit runs pair like room numbers: "305" is
			// "three oh five".
			lo, _ := strconv.ParseInt(num[1:], 10, 64)
			s := onesWords[num[0]-'0'] + " "
			if lo < 10 {
				s += "oh " + onesWords[lo]
			} else {
				s += Cardinal(lo)
			}
			return s, 2
		}
		return digitWords(num), 1
	}
	if dots >= 2 || (!t.IsHead && dots == 1) {
		segs := strings.Split(num, ".")
		words := make([]string, 0, len(segs))
		for _, seg := range segs {
			if seg == "" {
				return "", 0
			}
			if (seg[0] == '0' && len(seg) > 1) || len(seg) > 3 {
				words = append(words, digitWords(seg))
			} else {
				n, _ := strconv.ParseInt(seg, 10, 64)
				words = append(words, Cardinal(n))
			}
		}
		return strings.Join(words, " point "), 2
	}
	if t.Currency != "" {
		return currencyWords(num, t.Currency), 3
	}
	if dots == 1 {
		intPart, frac, _ := strings.Cut(num, ".")
		n, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return "", 0
		}
		return Cardinal(n) + " point " + digitWords(frac), 3
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return digitWords(num), 1
	}
	return Cardinal(n), 3
}

// currencyWords reads "5.30" with symbol "$" as "five dollars and thirty
// cents". Zero units on either side are dropped, and pence never takes a
// plural s.
func currencyWords(num, symbol string) string {
	units, ok := currencies[symbol]
	if !ok {
		return ""
	}
	intPart, frac, _ := strings.Cut(num, ".")
	major, _ := strconv.ParseInt(intPart, 10, 64)
	switch len(frac) {
	case 0:
		frac = "0"
	case 1:
		frac += "0"
	default:
		frac = frac[:2]
	}
	minor, _ := strconv.ParseInt(frac, 10, 64)

	majorWords := Cardinal(major) + " " + pluralUnit(units[0], major)
	if minor == 0 {
		return majorWords
	}
	minorWords := Cardinal(minor) + " " + pluralUnit(units[1], minor)
	if major == 0 {
		return minorWords
	}
	return majorWords + " and " + minorWords
}

func pluralUnit(unit string, n int64) string {
	if n == 1 || unit == "pence" {
		return unit
	}
	return unit + "s"
}

// pronounceWords looks each spelled word up as a cardinal and joins the
// phonemes. Number flags adjust the reading: "n" glues "and" onto the
// preceding word without a space, "a" reduces a leading "one" to a schwa.
func (e *Engine) pronounceWords(words string, stress *float64, flags string, ctx lexicon.Context) (string, bool) {
	split := strings.FieldsFunc(words, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(split) == 0 {
		return "", false
	}
	var parts []string
	for i, w := range split {
		if i == 0 && w == "one" && strings.ContainsRune(flags, 'a') {
			// Same reduced vowel the article "a" resolves to.
			parts = append(parts, "ɐ")
			continue
		}
		ps, _, ok := e.lex.Get(w, "CD", stress, ctx)
		if !ok || ps == "" {
			return "", false
		}
		if w == "and" && strings.ContainsRune(flags, 'n') && len(parts) > 0 {
			parts[len(parts)-1] += ps
			continue
		}
		parts = append(parts, ps)
	}
	return strings.Join(parts, " "), true
}

func (e *Engine) applyNumberSuffix(ps, suffix string) (string, bool) {
	switch suffix {
	case "":
		return ps, true
	case "s", "'s", "’s":
		return e.lex.AppendS(ps), true
	case "ed":
		return e.lex.AppendEd(ps), true
	case "ing":
		out, ok := e.lex.AppendIng(ps)
		return out, ok
	}
	return ps, false
}
