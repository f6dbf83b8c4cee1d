// Package phonemizer defines the non-English phonemization boundary.
//
// English goes through the full rule-based engine in pkg/g2p; every other
// language is delegated wholesale to a Phonemizer implementation. The
// canonical implementation is the goruut-backed one in the goruut
// subpackage.
package phonemizer

import "context"

// Phonemizer converts text of a given language directly to a phoneme string.
//
// Implementations must be safe for concurrent use.
type Phonemizer interface {
	// Phonemize converts text to its phoneme representation. language is a
	// lowercase code such as "fr" or "de".
	Phonemize(ctx context.Context, language, text string) (string, error)

	// Supports reports whether the implementation can phonemize the given
	// language.
	Supports(language string) bool
}
