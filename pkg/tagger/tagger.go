// Package tagger defines the part-of-speech tagging boundary of the G2P
// engine.
//
// The engine treats the tagger as an external collaborator: any implementation
// that deterministically splits text into ordered (surface, Penn tag) pairs
// can drive it. The engine reconstructs token whitespace itself by aligning
// the returned surfaces against the input text, so implementations do not
// need to report spacing.
//
// Implementations must be safe for concurrent use.
package tagger

import "context"

// Word is a single tagged surface form.
type Word struct {
	// Text is the surface exactly as it appears in the input.
	Text string

	// Tag is the Penn Treebank part-of-speech tag.
	Tag string
}

// Tagger converts text into an ordered sequence of tagged words. The
// concatenation of the returned surfaces, with whitespace re-inserted, must
// reconstruct the input exactly: no surface may be altered or dropped.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Word, error)
}
