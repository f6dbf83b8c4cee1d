package lexicon

import (
	"strings"
	"unicode"

	"github.com/veloxvoice/g2p/pkg/phoneme"
)

// SpellOut pronounces word letter by letter using the gold per-letter table.
// The joined result carries secondary stress on every letter except the last,
// which is promoted to primary. Non-letter characters are skipped. Rating is
// fixed at 3.
func (l *Lexicon) SpellOut(word string) (string, int, bool) {
	var b strings.Builder
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		e, ok := l.golds[strings.ToUpper(string(r))]
		if !ok {
			return "", 0, false
		}
		ps, ok := e.Select("", true)
		if !ok || ps == "" {
			return "", 0, false
		}
		b.WriteString(ps)
	}
	if b.Len() == 0 {
		return "", 0, false
	}

	joined := ApplyStress(b.String(), stressOf(0))
	if i := strings.LastIndex(joined, string(phoneme.SecondaryStress)); i >= 0 {
		joined = joined[:i] + string(phoneme.PrimaryStress) + joined[i+len(string(phoneme.SecondaryStress)):]
	}
	return joined, 3, true
}
