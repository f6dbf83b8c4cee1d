package lexicon

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// suggestFuzzyThreshold is the minimum Jaro-Winkler score for a candidate
// that shares no Double Metaphone code with the query.
const suggestFuzzyThreshold = 0.85

// Suggest returns up to max known words that sound like word, for diagnosing
// out-of-vocabulary tokens. Candidates sharing a Double Metaphone code with
// word rank first, ordered by Jaro-Winkler similarity; pure string-similarity
// matches are admitted only above a higher threshold.
func (l *Lexicon) Suggest(word string, max int) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || max <= 0 {
		return nil
	}

	p, s := matchr.DoubleMetaphone(word)

	type candidate struct {
		word     string
		score    float64
		phonetic bool
	}
	var cands []candidate

	for _, known := range l.Words() {
		if known == word {
			continue
		}
		kp, ks := matchr.DoubleMetaphone(known)
		phonetic := p != "" && (p == kp || p == ks) || s != "" && (s == kp || s == ks)
		score := matchr.JaroWinkler(word, known, false)
		if !phonetic && score < suggestFuzzyThreshold {
			continue
		}
		cands = append(cands, candidate{word: known, score: score, phonetic: phonetic})
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].phonetic != cands[j].phonetic {
			return cands[i].phonetic
		}
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].word < cands[j].word
	})

	if len(cands) > max {
		cands = cands[:max]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.word
	}
	return out
}
