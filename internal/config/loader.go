package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var languageRe = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]{2})?$`)

// Load reads the YAML configuration file at path and returns a validated
// [Config]. It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}

	if lang := cfg.Engine.Language; lang != "" && !languageRe.MatchString(lang) {
		errs = append(errs, fmt.Errorf("engine.language %q is invalid; expected a lowercase code such as %q or %q", lang, "en-us", "fr"))
	}

	if lex := cfg.Engine.Lexicon; lex != nil {
		if lex.GoldPath == "" {
			errs = append(errs, errors.New("engine.lexicon.gold_path is required when engine.lexicon is set"))
		}
		if lex.SilverPath == "" {
			errs = append(errs, errors.New("engine.lexicon.silver_path is required when engine.lexicon is set"))
		}
	}

	return errors.Join(errs...)
}
