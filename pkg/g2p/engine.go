// Package g2p converts English text to phonemes. Text flows through a fixed
// pipeline: override extraction, part-of-speech tagging, token binding,
// segmentation, right-to-left phoneme resolution, and assembly. Non-English
// input bypasses the pipeline entirely and is delegated to a fallback
// phonemizer.
package g2p

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/veloxvoice/g2p/internal/observe"
	"github.com/veloxvoice/g2p/pkg/lexicon"
	"github.com/veloxvoice/g2p/pkg/phoneme"
	"github.com/veloxvoice/g2p/pkg/phonemizer"
	"github.com/veloxvoice/g2p/pkg/tagger"
	"github.com/veloxvoice/g2p/pkg/tagger/heuristic"
)

// ErrInvalidLanguage is returned when an Engine is constructed for, or asked
// to convert, a language it cannot handle.
var ErrInvalidLanguage = errors.New("g2p: invalid language")

// Config parameterizes Engine construction. The zero value selects American
// English with the built-in dictionaries and the heuristic tagger.
type Config struct {
	// Language is a lowercase BCP 47-ish code: "en-us", "en-gb", or any
	// code the Fallback supports.
	Language string

	// Lexicon overrides the built-in dictionaries. Ignored for non-English
	// languages.
	Lexicon *lexicon.Lexicon

	// Tagger overrides the part-of-speech tagger. Ignored for non-English
	// languages.
	Tagger tagger.Tagger

	// Fallback handles every language other than English. Required when
	// Language is not an English variant.
	Fallback phonemizer.Phonemizer

	// Metrics overrides the default metric instruments.
	Metrics *observe.Metrics
}

// Engine converts text of one configured language to phonemes. It is safe
// for concurrent use.
type Engine struct {
	language string
	english  bool
	lex      *lexicon.Lexicon
	tagger   tagger.Tagger
	fallback phonemizer.Phonemizer
	metrics  *observe.Metrics
}

// New constructs an Engine for cfg.Language.
func New(cfg Config) (*Engine, error) {
	e := &Engine{
		language: cfg.Language,
		lex:      cfg.Lexicon,
		tagger:   cfg.Tagger,
		fallback: cfg.Fallback,
		metrics:  cfg.Metrics,
	}
	if e.language == "" {
		e.language = "en-us"
	}
	if e.metrics == nil {
		e.metrics = observe.Default()
	}

	if dialect, ok := englishDialect(e.language); ok {
		e.english = true
		if e.lex == nil {
			lex, err := lexicon.Builtin(dialect)
			if err != nil {
				return nil, err
			}
			e.lex = lex
		}
		if e.tagger == nil {
			e.tagger = heuristic.New()
		}
		return e, nil
	}

	if e.fallback == nil || !e.fallback.Supports(e.language) {
		return nil, fmt.Errorf("%w: unsupported language %q", ErrInvalidLanguage, e.language)
	}
	return e, nil
}

// Language returns the language code the engine was built for.
func (e *Engine) Language() string { return e.language }

// Lexicon exposes the engine's dictionary, for suggestion lookups and
// diagnostics. It is nil for non-English engines.
func (e *Engine) Lexicon() *lexicon.Lexicon { return e.lex }

func englishDialect(language string) (lexicon.Dialect, bool) {
	switch language {
	case "en", "en-us":
		return lexicon.US, true
	case "en-gb":
		return lexicon.GB, true
	}
	return "", false
}

// Convert transforms text into a phoneme string, returning the resolved
// token list alongside it. Tokens whose pronunciation could not be resolved
// render as the unknown placeholder; the caller can inspect the token list
// to find them.
func (e *Engine) Convert(ctx context.Context, text string) (string, []Token, error) {
	ctx, span := observe.StartSpan(ctx, "g2p.Convert")
	defer span.End()
	start := time.Now()

	ps, tokens, err := e.convert(ctx, text)

	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("language", e.language),
		attribute.String("status", status),
	)
	e.metrics.ConvertDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	e.metrics.Conversions.Add(ctx, 1, attrs)
	return ps, tokens, err
}

func (e *Engine) convert(ctx context.Context, text string) (string, []Token, error) {
	if !e.english {
		ps, err := e.fallback.Phonemize(ctx, e.language, text)
		if err != nil {
			return "", nil, fmt.Errorf("g2p: phonemize %q: %w", e.language, err)
		}
		return ps, nil, nil
	}

	cleaned, surfaces, features := Preprocess(text)
	if cleaned == "" {
		return "", nil, nil
	}

	tagged, err := e.tagger.Tag(ctx, cleaned)
	if err != nil {
		return "", nil, fmt.Errorf("g2p: tag: %w", err)
	}
	if len(tagged) == 0 {
		return "", nil, nil
	}

	toks := bindTokens(cleaned, tagged, surfaces, features)
	toks = foldLeft(toks)
	words := retokenize(toks)
	e.resolve(words)

	return e.assemble(ctx, words)
}

// assemble flattens resolved words back into one phoneme string, joining on
// each token's original whitespace.
func (e *Engine) assemble(ctx context.Context, words []Word) (string, []Token, error) {
	var b strings.Builder
	var out []Token
	unknown := 0
	for _, w := range words {
		for _, tk := range w.tokens() {
			if tk.Phonemes == nil {
				b.WriteString(phoneme.Unknown)
				unknown++
				observe.Logger(ctx).WarnContext(ctx, "unresolved token",
					"text", tk.Text, "tag", tk.Tag)
			} else {
				b.WriteString(*tk.Phonemes)
				if tk.Rating > 0 {
					e.metrics.TokensResolved.Add(ctx, 1, metric.WithAttributes(
						attribute.Int("rating", tk.Rating)))
				}
			}
			b.WriteString(tk.Whitespace)
			out = append(out, *tk)
		}
	}
	if unknown > 0 {
		e.metrics.TokensUnknown.Add(ctx, int64(unknown))
	}
	return strings.TrimRight(b.String(), " \t\n"), out, nil
}
