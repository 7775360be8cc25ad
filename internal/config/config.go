package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docview/internal/route"
)

// EnvPrefix prefixes environment overrides, e.g. DOCVIEW_PORT.
const EnvPrefix = "DOCVIEW_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCVIEW_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DOCVIEW_DOCS_ROOT -> docs_root,
	// DOCVIEW_LOG__LEVEL -> log.level.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// A configured list replaces its default outright; decoding into the
	// populated slice would fill omitted fields from the default entry at
	// the same index.
	if k.Exists("routes") {
		cfg.Routes = nil
	}
	if k.Exists("expanded") {
		cfg.Expanded = nil
	}
	if k.Exists("include") {
		cfg.Include = nil
	}
	if k.Exists("exclude") {
		cfg.Exclude = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validSources = map[SourceType]bool{
	SourceFS:   true,
	SourceHTTP: true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validSources[c.Source] {
		return fmt.Errorf("invalid source %q: must be one of fs, http", c.Source)
	}
	if c.Source == SourceFS && c.DocsRoot == "" {
		return fmt.Errorf("docs_root is required for source fs")
	}
	if c.Source == SourceHTTP && c.BaseURL == "" {
		return fmt.Errorf("base_url is required for source http")
	}
	if !strings.HasSuffix(c.Index, route.MarkdownExt) {
		return fmt.Errorf("index %q must end in %s", c.Index, route.MarkdownExt)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must be non-negative")
	}
	if len(c.Routes) == 0 {
		return fmt.Errorf("routes must not be empty")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	if _, err := c.Table(); err != nil {
		return err
	}
	return nil
}

// Table builds the route table from the configured routes.
func (c *Config) Table() (*route.Table, error) {
	t, err := route.NewTable(c.Routes, route.DocumentPath(c.Index))
	if err != nil {
		return nil, fmt.Errorf("route table: %w", err)
	}
	return t, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", s, err)
	}
	return lvl, nil
}
