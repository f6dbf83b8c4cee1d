// Package config provides the configuration schema and loader for the g2p
// service.
package config

// LogLevel controls log verbosity for the g2p service.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for the g2p service.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
}

// ServerConfig holds observability and logging settings.
type ServerConfig struct {
	// MetricsAddr is the TCP address the Prometheus metrics endpoint
	// listens on (e.g., ":9090"). Empty disables the endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// EngineConfig selects the conversion language and dictionary sources.
type EngineConfig struct {
	// Language is the conversion language code (e.g., "en-us", "en-gb",
	// "fr"). Defaults to "en-us".
	Language string `yaml:"language"`

	// Lexicon points at external dictionary files. When nil, the built-in
	// dictionaries are used.
	Lexicon *LexiconConfig `yaml:"lexicon"`
}

// LexiconConfig holds paths to the two-tier dictionary files.
type LexiconConfig struct {
	// GoldPath is the path to the curated gold dictionary (JSON).
	GoldPath string `yaml:"gold_path"`

	// SilverPath is the path to the machine-derived silver dictionary (JSON).
	SilverPath string `yaml:"silver_path"`
}
