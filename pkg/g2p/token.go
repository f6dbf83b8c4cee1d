package g2p

import (
	"sort"
	"strings"
	"unicode"

	"github.com/veloxvoice/g2p/pkg/phoneme"
)

// Token is one surface unit flowing through the pipeline. Tokens are created
// during tokenization and retokenization and only mutated (phonemes, rating,
// metadata) during resolution.
type Token struct {
	// Text is the surface form exactly as written.
	Text string `json:"text"`

	// Tag is the Penn part-of-speech tag.
	Tag string `json:"tag"`

	// Whitespace is the literal whitespace that followed the surface in the
	// input.
	Whitespace string `json:"whitespace"`

	// Phonemes is the resolved phoneme string, nil while unresolved. The
	// empty string is a valid resolution (silent tokens such as currency
	// symbols).
	Phonemes *string `json:"phonemes"`

	// Rating is the confidence of the resolution, 1–5 (5 = explicit
	// override, 4 = gold, 3 = silver or spell-out, 2 = segment number
	// reading, 1 = digit-by-digit fallback). Zero while unresolved.
	Rating int `json:"rating,omitempty"`

	// IsHead is false when the token is a forced continuation of its
	// predecessor and must be folded into it.
	IsHead bool `json:"-"`

	// Alias substitutes the text for dictionary lookup (e.g. "2" → "to").
	Alias string `json:"-"`

	// Stress is an explicit stress override in
	// {-2, -1, -0.5, 0, 0.5, 1, 2}, nil when absent.
	Stress *float64 `json:"stress,omitempty"`

	// Currency is the pending currency symbol attached to a numeral.
	Currency string `json:"-"`

	// NumFlags holds number-formatting directive characters.
	NumFlags string `json:"-"`

	// Prespace forces a rendering space before this token's phonemes when
	// merged into a compound.
	Prespace bool `json:"-"`
}

// Word is the unit the resolver iterates over: either a single token or an
// ordered group of tokens with no whitespace between them (a compound
// candidate such as "$", "5", ".", "30").
type Word struct {
	Single *Token
	Group  []*Token
}

func (w Word) tokens() []*Token {
	if w.Single != nil {
		return []*Token{w.Single}
	}
	return w.Group
}

// mergeTokens combines a window of adjacent tokens into a new token for
// joint lookup. The merged text keeps the members' inner whitespace; the
// trailing whitespace is the last member's. The tag comes from the member
// with the highest uppercase weight, stress survives only when every member
// that has one agrees, currency takes the maximum, and numFlags is the
// sorted union.
func mergeTokens(ts []*Token) *Token {
	var text strings.Builder
	for _, t := range ts[:len(ts)-1] {
		text.WriteString(t.Text)
		text.WriteString(t.Whitespace)
	}
	text.WriteString(ts[len(ts)-1].Text)

	merged := &Token{
		Text:       text.String(),
		Tag:        dominantTag(ts),
		Whitespace: ts[len(ts)-1].Whitespace,
		IsHead:     ts[0].IsHead,
		Prespace:   ts[0].Prespace,
		Stress:     commonStress(ts),
		Currency:   maxCurrency(ts),
		NumFlags:   unionFlags(ts),
	}
	merged.Phonemes, merged.Rating = mergedPhonemes(ts)
	return merged
}

// mergedPhonemes joins member phonemes, inserting a rendering space wherever
// a member flagged Prespace abuts non-empty phonemes. It returns nil when
// any member is unresolved; the rating is the weakest member's.
func mergedPhonemes(ts []*Token) (*string, int) {
	rating := 0
	var b strings.Builder
	for _, t := range ts {
		if t.Phonemes == nil {
			return nil, 0
		}
		if t.Prespace && b.Len() > 0 && *t.Phonemes != "" {
			b.WriteByte(' ')
		}
		b.WriteString(*t.Phonemes)
		if rating == 0 || (t.Rating != 0 && t.Rating < rating) {
			rating = t.Rating
		}
	}
	ps := b.String()
	return &ps, rating
}

func dominantTag(ts []*Token) string {
	best := ts[0]
	bestW := upperWeight(best.Text)
	for _, t := range ts[1:] {
		if w := upperWeight(t.Text); w > bestW {
			best, bestW = t, w
		}
	}
	return best.Tag
}

// upperWeight scores a surface by casing: 2 per uppercase letter, 1 per
// lowercase.
func upperWeight(s string) int {
	w := 0
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			w += 2
		case unicode.IsLower(r):
			w++
		}
	}
	return w
}

func commonStress(ts []*Token) *float64 {
	var stress *float64
	for _, t := range ts {
		if t.Stress == nil {
			continue
		}
		if stress == nil {
			v := *t.Stress
			stress = &v
		} else if *stress != *t.Stress {
			return nil
		}
	}
	return stress
}

func maxCurrency(ts []*Token) string {
	cur := ""
	for _, t := range ts {
		if t.Currency > cur {
			cur = t.Currency
		}
	}
	return cur
}

func unionFlags(ts []*Token) string {
	set := map[rune]struct{}{}
	for _, t := range ts {
		for _, r := range t.NumFlags {
			set[r] = struct{}{}
		}
	}
	flags := make([]rune, 0, len(set))
	for r := range set {
		flags = append(flags, r)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })
	return string(flags)
}

// setPhonemes resolves tk in place.
func (t *Token) setPhonemes(ps string, rating int) {
	t.Phonemes = &ps
	t.Rating = rating
}

// stressWeight is the diphthong-weighted length of the token's phonemes.
func (t *Token) stressWeight() int {
	if t.Phonemes == nil {
		return 0
	}
	return phoneme.StressWeight(*t.Phonemes)
}

func f64(v float64) *float64 { return &v }
