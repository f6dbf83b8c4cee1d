package g2p

import (
	"sort"
	"strings"

	"github.com/veloxvoice/g2p/pkg/lexicon"
	"github.com/veloxvoice/g2p/pkg/phoneme"
)

// junkTexts are group members with no spoken value of their own.
var junkTexts = map[string]struct{}{
	"'": {}, ",": {}, "-": {}, ".": {}, "_": {}, "‘": {}, "’": {}, "/": {},
}

// resolve assigns phonemes right to left so that each word is pronounced
// with knowledge of what follows it ("the" before a vowel, "to" before a
// reduced syllable).
func (e *Engine) resolve(words []Word) {
	ctx := lexicon.Context{}
	for i := len(words) - 1; i >= 0; i-- {
		if words[i].Group != nil {
			ctx = e.resolveGroup(words[i].Group, ctx)
			continue
		}
		tk := words[i].Single
		if tk.Phonemes == nil {
			e.pronounceToken(tk, ctx)
		}
		ctx = updateContext(ctx, tk)
	}
}

// resolveGroup pronounces an unspaced run of tokens. For each unresolved
// suffix it tries merged lexicon lookups over shrinking windows, widest
// first ("can" + "'t" matching the contraction entry, then narrower
// windows dropped from the left), and only when no window matches peels
// the rightmost token off for individual resolution.
func (e *Engine) resolveGroup(tks []*Token, ctx lexicon.Context) lexicon.Context {
	n := len(tks)
	for n > 0 {
		left := n
		for left > 0 && mergeable(tks[left-1]) {
			left--
		}
		matched := false
		for l := left; l < n; l++ {
			merged := mergeTokens(tks[l:n])
			word := normalizeApostrophes(merged.Text)
			ps, rating, ok := e.lex.Pronounce(word, merged.Tag, merged.Stress, ctx)
			if !ok {
				continue
			}
			tks[l].setPhonemes(ps, rating)
			for _, t := range tks[l+1 : n] {
				t.setPhonemes("", rating)
			}
			ctx = updateContext(ctx, tks[l])
			n = l
			matched = true
			break
		}
		if matched {
			continue
		}

		tk := tks[n-1]
		if tk.Phonemes == nil {
			if _, junk := junkTexts[tk.Text]; junk {
				tk.setPhonemes("", 3)
			} else {
				e.pronounceToken(tk, ctx)
			}
		}
		ctx = updateContext(ctx, tk)
		n--
	}
	rebalanceGroup(tks)
	return ctx
}

func mergeable(t *Token) bool {
	return t.Phonemes == nil && t.Alias == ""
}

// pronounceToken resolves one token through the lexicon, falling back to
// number expansion for numeric text. Unresolvable tokens keep nil
// phonemes and surface as the unknown marker at assembly.
func (e *Engine) pronounceToken(tk *Token, ctx lexicon.Context) {
	word := tk.Text
	if tk.Alias != "" {
		word = tk.Alias
	}
	word = normalizeApostrophes(word)
	if ps, rating, ok := e.lex.Pronounce(word, tk.Tag, tk.Stress, ctx); ok {
		tk.setPhonemes(ps, rating)
		return
	}
	if isNumberWord(word) {
		if ps, rating, ok := e.expandNumber(tk, word, ctx); ok {
			tk.setPhonemes(ps, rating)
			return
		}
	}
}

// updateContext derives the lookahead for the word to the left. The first
// decisive rune of the phonemes settles whether a vowel follows; sentence
// punctuation resets the question, and an unresolved token leaves the
// previous answer standing.
func updateContext(ctx lexicon.Context, tk *Token) lexicon.Context {
	next := lexicon.Context{FutureVowel: ctx.FutureVowel}
	if tk.Phonemes != nil {
		for _, r := range *tk.Phonemes {
			if strings.ContainsRune(phoneme.NonQuotePuncts, r) {
				next.FutureVowel = nil
				break
			}
			if phoneme.IsVowel(r) || phoneme.IsConsonant(r) {
				v := phoneme.IsVowel(r)
				next.FutureVowel = &v
				break
			}
		}
	}
	next.FutureTo = tk.Text == "to" || tk.Text == "To" ||
		(tk.Text == "TO" && (tk.Tag == "TO" || tk.Tag == "IN"))
	return next
}

// rebalanceGroup keeps a tight cluster from stacking primary stresses.
// A two-carrier cluster headed by a single letter demotes its tail, and a
// cluster where at least half the carriers hold primary stress demotes
// the lighter half.
func rebalanceGroup(tks []*Token) {
	var carriers []*Token
	for _, t := range tks {
		if t.Phonemes != nil && *t.Phonemes != "" {
			carriers = append(carriers, t)
		}
	}
	if len(carriers) < 2 {
		return
	}
	if len(carriers) == 2 && len([]rune(carriers[0].Text)) == 1 {
		demoteStress(carriers[1])
		return
	}
	primaries := 0
	for _, t := range carriers {
		if strings.ContainsRune(*t.Phonemes, phoneme.PrimaryStress) {
			primaries++
		}
	}
	if primaries*2 < len(carriers) {
		return
	}
	order := make([]*Token, len(carriers))
	copy(order, carriers)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].stressWeight() < order[j].stressWeight()
	})
	for _, t := range order[:len(order)/2] {
		demoteStress(t)
	}
}

func demoteStress(tk *Token) {
	s := -0.5
	ps := lexicon.ApplyStress(*tk.Phonemes, &s)
	tk.Phonemes = &ps
}

func normalizeApostrophes(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '‘' || r == '’' {
			return '\''
		}
		return r
	}, s)
}
