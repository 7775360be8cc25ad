package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/docview/internal/route"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Source != SourceFS {
		t.Errorf("expected default source %q, got %q", SourceFS, cfg.Source)
	}
	if cfg.Index != "index.md" {
		t.Errorf("expected default index %q, got %q", "index.md", cfg.Index)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if len(cfg.Routes) != 17 {
		t.Errorf("expected 17 default routes, got %d", len(cfg.Routes))
	}
	if strings.Join(cfg.Expanded, ",") != "architecture,database,deployment" {
		t.Errorf("unexpected default expanded sections %v", cfg.Expanded)
	}
}

func TestDefaultRoutesRoundTrip(t *testing.T) {
	table, err := DefaultConfig().Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	for _, e := range table.Entries() {
		if got := table.PathToKey(table.KeyToPath(e.Key)); got != e.Key {
			t.Errorf("round trip of %q gave %q", e.Key, got)
		}
	}
	if got := table.KeyToPath("nonexistent/page"); got != "index.md" {
		t.Errorf("unknown key resolved to %q, want index.md", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.docview.yml")

	original := DefaultConfig()
	original.Title = "Nexoan Docs"
	original.Port = 9090
	original.Source = SourceHTTP
	original.BaseURL = "https://docs.example.com"
	original.Expanded = []string{"deployment"}
	original.Routes = []route.Entry{
		{Key: "", Path: "index.md"},
		{Key: "guide", Path: "guide/intro.md"},
	}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Source != original.Source {
		t.Errorf("source: got %q, want %q", loaded.Source, original.Source)
	}
	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if len(loaded.Routes) != 2 {
		t.Fatalf("routes length: got %d, want 2", len(loaded.Routes))
	}
	if loaded.Routes[1].Key != "guide" || loaded.Routes[1].Path != "guide/intro.md" {
		t.Errorf("routes[1]: got %+v", loaded.Routes[1])
	}
	if len(loaded.Expanded) != 1 || loaded.Expanded[0] != "deployment" {
		t.Errorf("expanded: got %v", loaded.Expanded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.DocsRoot != "docs" {
		t.Errorf("expected default docs_root, got %q", cfg.DocsRoot)
	}
}

func TestLoadHandWrittenRoutes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".docview.yml")
	yml := `routes:
  - key: guide
    path: guide.md
  - path: index.md
exclude:
  - "drafts/**"
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []route.Entry{
		{Key: "guide", Path: "guide.md"},
		{Key: "", Path: "index.md"},
	}
	if len(cfg.Routes) != len(want) {
		t.Fatalf("routes: got %v, want %v", cfg.Routes, want)
	}
	for i := range want {
		if cfg.Routes[i] != want[i] {
			t.Errorf("routes[%d]: got %+v, want %+v", i, cfg.Routes[i], want[i])
		}
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "drafts/**" {
		t.Errorf("exclude: got %v, want [drafts/**]", cfg.Exclude)
	}
	if len(cfg.Expanded) != len(DefaultExpanded) {
		t.Errorf("expanded should keep its default when unset, got %v", cfg.Expanded)
	}

	table, err := cfg.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if got := table.PathToKey("index.md"); got != "" {
		t.Errorf("PathToKey(index.md) = %q, want empty key", got)
	}
	if got := route.Href(table.PathToKey("index.md")); got != "#/" {
		t.Errorf("index href = %q, want #/", got)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DOCVIEW_PORT", "9191")
	t.Setenv("DOCVIEW_DOCS_ROOT", "site/docs")
	t.Setenv("DOCVIEW_FETCH_TIMEOUT", "15s")
	t.Setenv("DOCVIEW_LOG__LEVEL", "debug")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9191 {
		t.Errorf("env override failed: got port %d", loaded.Port)
	}
	if loaded.DocsRoot != "site/docs" {
		t.Errorf("env override failed: got docs_root %q", loaded.DocsRoot)
	}
	if loaded.FetchTimeout != 15*time.Second {
		t.Errorf("env override failed: got fetch_timeout %v", loaded.FetchTimeout)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("env override failed: got log.level %q", loaded.Log.Level)
	}
}

func TestValidateValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"source", func(c *Config) { c.Source = "s3" }},
		{"docs root", func(c *Config) { c.DocsRoot = "" }},
		{"base url", func(c *Config) { c.Source = SourceHTTP; c.BaseURL = "" }},
		{"index", func(c *Config) { c.Index = "index.html" }},
		{"port", func(c *Config) { c.Port = 70000 }},
		{"timeout", func(c *Config) { c.FetchTimeout = -time.Second }},
		{"no routes", func(c *Config) { c.Routes = nil }},
		{"duplicate path", func(c *Config) {
			c.Routes = append(c.Routes, route.Entry{Key: "again", Path: "storage.md"})
		}},
		{"index not routed", func(c *Config) { c.Index = "home.md" }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf, false)
	log.Info("hidden")
	log.Warn("shown", "path", "index.md")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), `"path":"index.md"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}

	buf.Reset()
	log = LogConfig{Level: "warn", Format: "text"}.NewLogger(&buf, true)
	log.Debug("debugging")
	if !strings.Contains(buf.String(), "debugging") {
		t.Error("verbose should force debug level")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" architecture , database ", []string{"architecture", "database"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestDetectDocsRoot(t *testing.T) {
	dir := t.TempDir()
	if got := detectDocsRoot(dir); got != "docs" {
		t.Errorf("empty dir: got %q, want docs", got)
	}
	if err := os.MkdirAll(filepath.Join(dir, "documentation"), 0o755); err != nil {
		t.Fatal(err)
	}
	if got := detectDocsRoot(dir); got != "documentation" {
		t.Errorf("got %q, want documentation", got)
	}
}
