package lexicon

import (
	"embed"
	"encoding/json"
	"fmt"
	"maps"
)

//go:embed data/*.json
var dataFS embed.FS

// Builtin constructs a Lexicon from the embedded seed dictionaries. The GB
// dialect overlays its spelling differences on the base dictionary; silver is
// shared between dialects.
func Builtin(dialect Dialect) (*Lexicon, error) {
	if !dialect.IsValid() {
		return nil, fmt.Errorf("lexicon: unknown dialect %q", dialect)
	}

	golds, err := loadEmbedded("data/gold_en.json")
	if err != nil {
		return nil, err
	}
	silvers, err := loadEmbedded("data/silver_en.json")
	if err != nil {
		return nil, err
	}
	if dialect == GB {
		overlay, err := loadEmbedded("data/gold_gb.json")
		if err != nil {
			return nil, err
		}
		maps.Copy(golds, overlay)
	}
	return newLexicon(golds, silvers, dialect), nil
}

func loadEmbedded(name string) (map[string]Entry, error) {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVocabularyLoad, err)
	}
	var d map[string]Entry
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("%w: parse %q: %w", ErrVocabularyLoad, name, err)
	}
	return d, nil
}
