package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/veloxvoice/g2p/internal/config"
)

const validYAML = `
server:
  metrics_addr: ":9090"
  log_level: debug
engine:
  language: en-gb
  lexicon:
    gold_path: /data/gold.json
    silver_path: /data/silver.json
`

func TestLoadFromReader(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader(validYAML))
	if err != nil {
		t.Fatalf("LoadFromReader returned error: %v", err)
	}
	if cfg.Server.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr=%q, want %q", cfg.Server.MetricsAddr, ":9090")
	}
	if cfg.Server.LogLevel != config.LogDebug {
		t.Errorf("LogLevel=%q, want debug", cfg.Server.LogLevel)
	}
	if cfg.Engine.Language != "en-gb" {
		t.Errorf("Language=%q, want en-gb", cfg.Engine.Language)
	}
	if cfg.Engine.Lexicon == nil || cfg.Engine.Lexicon.GoldPath != "/data/gold.json" {
		t.Errorf("Lexicon=%+v, want the gold path set", cfg.Engine.Lexicon)
	}
}

func TestLoadFromReaderUnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("server:\n  bogus: 1\n"))
	if err == nil {
		t.Error("LoadFromReader accepted an unknown field, want error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"zero value is valid", config.Config{}, false},
		{
			"bad log level",
			config.Config{Server: config.ServerConfig{LogLevel: "loud"}},
			true,
		},
		{
			"bad language",
			config.Config{Engine: config.EngineConfig{Language: "English (US)"}},
			true,
		},
		{
			"lexicon without silver path",
			config.Config{Engine: config.EngineConfig{
				Lexicon: &config.LexiconConfig{GoldPath: "/gold.json"},
			}},
			true,
		},
		{
			"full valid config",
			config.Config{
				Server: config.ServerConfig{LogLevel: config.LogInfo},
				Engine: config.EngineConfig{Language: "en-us"},
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.Validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate error=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o600); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Engine.Language != "en-gb" {
		t.Errorf("Language=%q, want en-gb", cfg.Engine.Language)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load(absent) succeeded, want error")
	}
}
