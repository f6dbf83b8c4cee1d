package lexicon_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/veloxvoice/g2p/pkg/lexicon"
)

// newLexicon loads the built-in dictionaries for a dialect, failing the test
// on error.
func newLexicon(t *testing.T, d lexicon.Dialect) *lexicon.Lexicon {
	t.Helper()
	l, err := lexicon.Builtin(d)
	if err != nil {
		t.Fatalf("Builtin(%q) returned error: %v", d, err)
	}
	return l
}

func stress(v float64) *float64 { return &v }

func vowel(v bool) *bool { return &v }

// --- Entry ---

func TestEntryUnmarshal(t *testing.T) {
	t.Parallel()

	var d map[string]lexicon.Entry
	data := `{"cat": "kˈæt", "read": {"VBD": "ɹˈɛd", "DEFAULT": "ɹˈid"}}`
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if got := d["cat"].Direct; got != "kˈæt" {
		t.Errorf("cat.Direct=%q, want %q", got, "kˈæt")
	}
	if d["cat"].ByTag != nil {
		t.Errorf("cat.ByTag=%v, want nil", d["cat"].ByTag)
	}
	if got := d["read"].ByTag["VBD"]; got != "ɹˈɛd" {
		t.Errorf("read.ByTag[VBD]=%q, want %q", got, "ɹˈɛd")
	}
}

func TestEntrySelect(t *testing.T) {
	t.Parallel()

	e := lexicon.Entry{ByTag: map[string]string{
		"VBD":     "past",
		"None":    "unknown",
		"VERB":    "verb",
		"DEFAULT": "default",
	}}

	tests := []struct {
		name         string
		tag          string
		vowelUnknown bool
		want         string
	}{
		{"exact tag", "VBD", false, "past"},
		{"None sentinel when context unknown", "NN", true, "unknown"},
		{"parent tag", "VBZ", false, "verb"},
		{"default", "NN", false, "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Select(tt.tag, tt.vowelUnknown)
			if !ok || got != tt.want {
				t.Errorf("Select(%q, %v)=(%q, %v), want (%q, true)", tt.tag, tt.vowelUnknown, got, ok, tt.want)
			}
		})
	}

	direct := lexicon.Entry{Direct: "dˈɔɡ"}
	if got, ok := direct.Select("NN", false); !ok || got != "dˈɔɡ" {
		t.Errorf("direct Select=(%q, %v), want (dˈɔɡ, true)", got, ok)
	}
}

func TestParentTag(t *testing.T) {
	t.Parallel()

	tests := []struct{ tag, want string }{
		{"VB", "VERB"},
		{"VBZ", "VERB"},
		{"NN", "NOUN"},
		{"NNPS", "NOUN"},
		{"RB", "ADV"},
		{"JJR", "ADJ"},
		{"DT", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := lexicon.ParentTag(tt.tag); got != tt.want {
			t.Errorf("ParentTag(%q)=%q, want %q", tt.tag, got, tt.want)
		}
	}
}

// --- Construction ---

func TestBuiltinDialects(t *testing.T) {
	t.Parallel()

	us := newLexicon(t, lexicon.US)
	gb := newLexicon(t, lexicon.GB)

	usPS, _, ok := us.Get("world", "NN", nil, lexicon.Context{})
	if !ok || usPS != "wˈɜɹld" {
		t.Errorf("US world=(%q, %v), want (wˈɜɹld, true)", usPS, ok)
	}
	gbPS, _, ok := gb.Get("world", "NN", nil, lexicon.Context{})
	if !ok || gbPS != "wˈɜld" {
		t.Errorf("GB world=(%q, %v), want (wˈɜld, true)", gbPS, ok)
	}

	if _, err := lexicon.Builtin("de"); err == nil {
		t.Error("Builtin(de) succeeded, want error")
	}
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	goldPath := filepath.Join(dir, "gold.json")
	silverPath := filepath.Join(dir, "silver.json")
	writeFile(t, goldPath, `{"hello": "həlˈO"}`)
	writeFile(t, silverPath, `{"wombat": "wˈɑmbæt"}`)

	l, err := lexicon.LoadFiles(goldPath, silverPath, lexicon.US)
	if err != nil {
		t.Fatalf("LoadFiles returned error: %v", err)
	}
	if ps, rating, ok := l.Get("hello", "UH", nil, lexicon.Context{}); !ok || ps != "həlˈO" || rating != 4 {
		t.Errorf("Get(hello)=(%q, %d, %v), want (həlˈO, 4, true)", ps, rating, ok)
	}
	if ps, rating, ok := l.Get("wombat", "NN", nil, lexicon.Context{}); !ok || ps != "wˈɑmbæt" || rating != 3 {
		t.Errorf("Get(wombat)=(%q, %d, %v), want (wˈɑmbæt, 3, true)", ps, rating, ok)
	}
}

func TestLoadFilesMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	silverPath := filepath.Join(dir, "silver.json")
	writeFile(t, silverPath, `{}`)

	_, err := lexicon.LoadFiles(filepath.Join(dir, "absent.json"), silverPath, lexicon.US)
	if !errors.Is(err, lexicon.ErrVocabularyLoad) {
		t.Errorf("LoadFiles error=%v, want ErrVocabularyLoad", err)
	}
}

func TestCaseExpansion(t *testing.T) {
	t.Parallel()

	l := newLexicon(t, lexicon.US)

	// Lowercase entries gain a Capitalized twin at load time so
	// sentence-initial words hit gold directly.
	ps, rating, ok := l.Get("Hello", "UH", nil, lexicon.Context{})
	if !ok || ps != "həlˈO" || rating != 4 {
		t.Errorf("Get(Hello)=(%q, %d, %v), want (həlˈO, 4, true)", ps, rating, ok)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%q) returned error: %v", path, err)
	}
}
