package g2p

import (
	"regexp"
	"strings"
)

// linkRe matches the [SURFACE](PAYLOAD) override span syntax.
var linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)

var intStressRe = regexp.MustCompile(`^[+-]?[0-9]+$`)

// FeatureKind discriminates the parsed override payload variants.
type FeatureKind int

const (
	// FeatureStress is a numeric stress override.
	FeatureStress FeatureKind = iota + 1

	// FeaturePhonemes is an explicit phoneme directive (/…/).
	FeaturePhonemes

	// FeatureFlags is a number-formatting directive (#…#).
	FeatureFlags
)

// Feature is one parsed override annotation.
type Feature struct {
	Kind     FeatureKind
	Stress   float64
	Phonemes string
	Flags    string
}

// Preprocess extracts override annotations from text. It returns the cleaned
// text (spans replaced by their surface), the ordered surface-token list, and
// a map from token index to parsed feature. Text outside spans is
// whitespace-tokenized unchanged. Malformed payloads are silently ignored.
// Preprocess is a pure function; no state survives between calls.
func Preprocess(text string) (string, []string, map[int]Feature) {
	text = strings.TrimSpace(text)

	var cleaned strings.Builder
	var tokens []string
	features := make(map[int]Feature)

	last := 0
	for _, m := range linkRe.FindAllStringSubmatchIndex(text, -1) {
		before := text[last:m[0]]
		cleaned.WriteString(before)
		tokens = append(tokens, strings.Fields(before)...)

		surface := text[m[2]:m[3]]
		payload := text[m[4]:m[5]]
		if f, ok := parseFeature(payload); ok {
			features[len(tokens)] = f
		}
		cleaned.WriteString(surface)
		tokens = append(tokens, surface)
		last = m[1]
	}
	tail := text[last:]
	cleaned.WriteString(tail)
	tokens = append(tokens, strings.Fields(tail)...)

	return cleaned.String(), tokens, features
}

func parseFeature(payload string) (Feature, bool) {
	switch {
	case payload == "0.5" || payload == "+0.5":
		return Feature{Kind: FeatureStress, Stress: 0.5}, true
	case payload == "-0.5":
		return Feature{Kind: FeatureStress, Stress: -0.5}, true
	case intStressRe.MatchString(payload):
		v := 0.0
		sign := 1.0
		s := payload
		if s[0] == '+' {
			s = s[1:]
		} else if s[0] == '-' {
			sign = -1.0
			s = s[1:]
		}
		for _, r := range s {
			v = v*10 + float64(r-'0')
		}
		return Feature{Kind: FeatureStress, Stress: sign * v}, true
	case len(payload) > 1 && strings.HasPrefix(payload, "/"):
		return Feature{Kind: FeaturePhonemes, Phonemes: strings.TrimRight(payload[1:], "/")}, true
	case len(payload) > 1 && strings.HasPrefix(payload, "#"):
		return Feature{Kind: FeatureFlags, Flags: strings.TrimRight(payload[1:], "#")}, true
	}
	return Feature{}, false
}
