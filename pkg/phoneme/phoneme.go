// Package phoneme defines the phoneme alphabet shared by the lexicon and the
// G2P engine: vowel/consonant/diphthong classification, stress marks, and the
// punctuation the engine is allowed to emit.
//
// The alphabet is the compact TTS-oriented IPA variant in which diphthongs are
// single capital letters (A = eɪ, I = aɪ, O = oʊ, Q = ɔə, W = aʊ, Y = ɔɪ),
// keeping every phoneme a single Unicode scalar for the downstream vocabulary
// mapper.
package phoneme

import "strings"

const (
	// PrimaryStress marks the syllable carrying primary stress.
	PrimaryStress = 'ˈ'

	// SecondaryStress marks a syllable carrying secondary stress.
	SecondaryStress = 'ˌ'

	// Unknown is rendered in place of a token that could not be resolved.
	Unknown = "❓"
)

const (
	vowels     = "AIOQWYaiuæɐɑɒɔəɛɜɪʊʌᵻ"
	consonants = "bdfhjklmnpstvwzðŋɡɹɾʃʒʤʧθ"
	diphthongs = "AIOQWY"

	// usTaps lists the vowel classes after which American English flaps an
	// intervocalic t (ɾ) when a vowel-initial suffix follows.
	usTaps = "AIOWYiuæɑəɛɪɹʊʌ"
)

// Puncts is the set of punctuation characters that may survive into the
// output phoneme string.
const Puncts = `;:,.!?—…"“”`

// NonQuotePuncts excludes the quote characters from [Puncts]; these are the
// characters that reset vowel context between clauses.
const NonQuotePuncts = ";:,.!?—…"

// IsVowel reports whether r is a vowel-class phoneme (diphthongs included).
func IsVowel(r rune) bool { return strings.ContainsRune(vowels, r) }

// IsConsonant reports whether r is a consonant-class phoneme.
func IsConsonant(r rune) bool { return strings.ContainsRune(consonants, r) }

// IsDiphthong reports whether r is one of the single-scalar diphthongs.
func IsDiphthong(r rune) bool { return strings.ContainsRune(diphthongs, r) }

// IsStress reports whether r is a stress mark.
func IsStress(r rune) bool { return r == PrimaryStress || r == SecondaryStress }

// IsUSTapVowel reports whether r belongs to the vowel class that triggers
// American t-flapping.
func IsUSTapVowel(r rune) bool { return strings.ContainsRune(usTaps, r) }

// HasVowel reports whether ps contains at least one vowel-class phoneme.
func HasVowel(ps string) bool {
	return strings.IndexFunc(ps, IsVowel) >= 0
}

// StressWeight returns the diphthong-weighted length of ps: every diphthong
// counts twice, every other scalar once. Used to rank compound members when
// rebalancing stress.
func StressWeight(ps string) int {
	w := 0
	for _, r := range ps {
		if IsDiphthong(r) {
			w += 2
		} else {
			w++
		}
	}
	return w
}
