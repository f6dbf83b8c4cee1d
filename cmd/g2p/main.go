// Command g2p converts text to phonemes from the command line. Input is
// taken from the arguments, or from stdin when none are given; the phoneme
// string is written to stdout.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veloxvoice/g2p/internal/config"
	"github.com/veloxvoice/g2p/internal/health"
	"github.com/veloxvoice/g2p/internal/observe"
	"github.com/veloxvoice/g2p/pkg/g2p"
	"github.com/veloxvoice/g2p/pkg/lexicon"
	"github.com/veloxvoice/g2p/pkg/phonemizer/goruut"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "", "path to the YAML configuration file (optional)")
	lang := flag.String("lang", "", "conversion language code (overrides config), e.g. en-us, en-gb, fr")
	tokens := flag.Bool("tokens", false, "print the resolved token list as JSON instead of plain phonemes")
	suggest := flag.Int("suggest", 0, "print up to N spelling suggestions for each unresolved word")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address (overrides config)")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "g2p: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *lang != "" {
		cfg.Engine.Language = *lang
	}
	if *metricsAddr != "" {
		cfg.Server.MetricsAddr = *metricsAddr
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	slog.SetDefault(newLogger(cfg.Server.LogLevel))

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    "g2p",
		ServiceVersion: version,
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	// ── Engine ────────────────────────────────────────────────────────────────
	engine, err := buildEngine(cfg)
	if err != nil {
		slog.Error("failed to build engine", "err", err)
		return 1
	}

	if cfg.Server.MetricsAddr != "" {
		go serveMetrics(cfg.Server.MetricsAddr, engine)
	}

	// ── Convert ───────────────────────────────────────────────────────────────
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		in, err := readStdin()
		if err != nil {
			slog.Error("failed to read stdin", "err", err)
			return 1
		}
		text = in
	}

	ps, toks, err := engine.Convert(ctx, text)
	if err != nil {
		slog.Error("conversion failed", "err", err)
		return 1
	}

	if *tokens {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toks); err != nil {
			slog.Error("failed to encode tokens", "err", err)
			return 1
		}
	} else {
		fmt.Println(ps)
	}

	if *suggest > 0 && engine.Lexicon() != nil {
		printSuggestions(engine.Lexicon(), toks, *suggest)
	}
	return 0
}

func buildEngine(cfg *config.Config) (*g2p.Engine, error) {
	ecfg := g2p.Config{
		Language: cfg.Engine.Language,
		Fallback: goruut.New(),
	}
	if lexCfg := cfg.Engine.Lexicon; lexCfg != nil {
		dialect := lexicon.US
		if strings.HasSuffix(cfg.Engine.Language, "-gb") {
			dialect = lexicon.GB
		}
		lex, err := lexicon.LoadFiles(lexCfg.GoldPath, lexCfg.SilverPath, dialect)
		if err != nil {
			return nil, err
		}
		ecfg.Lexicon = lex
	}
	return g2p.New(ecfg)
}

func readStdin() (string, error) {
	var b strings.Builder
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sc.Text())
	}
	return b.String(), sc.Err()
}

func printSuggestions(lex *lexicon.Lexicon, toks []g2p.Token, max int) {
	seen := make(map[string]struct{})
	for _, tk := range toks {
		if tk.Phonemes != nil {
			continue
		}
		if _, dup := seen[tk.Text]; dup {
			continue
		}
		seen[tk.Text] = struct{}{}
		if sugg := lex.Suggest(tk.Text, max); len(sugg) > 0 {
			fmt.Fprintf(os.Stderr, "g2p: unknown %q, did you mean: %s\n", tk.Text, strings.Join(sugg, ", "))
		}
	}
}

func serveMetrics(addr string, engine *g2p.Engine) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	health.New(health.Check{
		Name: "engine",
		Run: func(ctx context.Context) error {
			_, _, err := engine.Convert(ctx, "ok")
			return err
		},
	}).Register(mux)
	slog.Info("metrics endpoint listening", "addr", addr)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("metrics server error", "err", err)
	}
}

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
