package config

import (
	"time"

	"github.com/ziadkadry99/docview/internal/route"
)

// SourceType selects where documents are loaded from.
type SourceType string

const (
	SourceFS   SourceType = "fs"
	SourceHTTP SourceType = "http"
)

// Config is the top-level docview configuration, corresponding to .docview.yml.
type Config struct {
	Title           string        `yaml:"title" koanf:"title"`
	DocsRoot        string        `yaml:"docs_root" koanf:"docs_root"`
	Source          SourceType    `yaml:"source" koanf:"source"`
	BaseURL         string        `yaml:"base_url" koanf:"base_url"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	Index           string        `yaml:"index" koanf:"index"`
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool          `yaml:"watch" koanf:"watch"`
	HighlightStyle  string        `yaml:"highlight_style" koanf:"highlight_style"`
	Expanded        []string      `yaml:"expanded" koanf:"expanded"`
	Routes          []route.Entry `yaml:"routes" koanf:"routes"`
	Include         []string      `yaml:"include" koanf:"include"`
	Exclude         []string      `yaml:"exclude" koanf:"exclude"`
	Log             LogConfig     `yaml:"log" koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
