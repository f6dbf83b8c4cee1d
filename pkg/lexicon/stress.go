package lexicon

import (
	"sort"
	"strings"

	"github.com/veloxvoice/g2p/pkg/phoneme"
)

// ApplyStress rewrites the stress marks of ps for the target stress level.
// A nil stress leaves ps untouched. Levels below -1 strip all marks; -1 (and
// 0/-0.5 when a primary mark is present) demote primary to secondary; levels
// in [0, 1] add a secondary mark to an unmarked word; levels of 1 and above
// promote a lone secondary mark to primary; levels above 1 add a primary mark
// to an unmarked word. Words with no vowel are never marked.
func ApplyStress(ps string, stress *float64) string {
	if stress == nil {
		return ps
	}
	s := *stress
	primary := strings.ContainsRune(ps, phoneme.PrimaryStress)
	secondary := strings.ContainsRune(ps, phoneme.SecondaryStress)

	switch {
	case s < -1:
		return strings.Map(func(r rune) rune {
			if phoneme.IsStress(r) {
				return -1
			}
			return r
		}, ps)
	case s == -1 || ((s == 0 || s == -0.5) && primary):
		ps = strings.ReplaceAll(ps, string(phoneme.SecondaryStress), "")
		return strings.ReplaceAll(ps, string(phoneme.PrimaryStress), string(phoneme.SecondaryStress))
	case (s == 0 || s == 0.5 || s == 1) && !primary && !secondary:
		if !phoneme.HasVowel(ps) {
			return ps
		}
		return Restress(string(phoneme.SecondaryStress) + ps)
	case s >= 1 && !primary && secondary:
		return strings.Replace(ps, string(phoneme.SecondaryStress), string(phoneme.PrimaryStress), 1)
	case s > 1 && !primary && !secondary:
		if !phoneme.HasVowel(ps) {
			return ps
		}
		return Restress(string(phoneme.PrimaryStress) + ps)
	}
	return ps
}

// Restress moves every stress mark in ps to immediately precede the vowel of
// its syllable: for each mark, the nearest following vowel is found and the
// mark is relocated to just before it.
func Restress(ps string) string {
	runes := []rune(ps)
	// Position of each rune on a fractional scale so that a mark can be
	// slotted in just before its vowel.
	pos := make([]float64, len(runes))
	for i := range runes {
		pos[i] = float64(i)
	}
	for i, r := range runes {
		if !phoneme.IsStress(r) {
			continue
		}
		for j := i + 1; j < len(runes); j++ {
			if phoneme.IsVowel(runes[j]) {
				pos[i] = float64(j) - 0.5
				break
			}
		}
	}

	order := make([]int, len(runes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return pos[order[a]] < pos[order[b]] })

	var b strings.Builder
	b.Grow(len(ps))
	for _, i := range order {
		b.WriteRune(runes[i])
	}
	return b.String()
}

func stressOf(v float64) *float64 { return &v }
