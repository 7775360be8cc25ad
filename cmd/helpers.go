package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ziadkadry99/docview/internal/config"
	"github.com/ziadkadry99/docview/internal/content"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// viewer bundles the navigation core built from the configuration.
type viewer struct {
	cfg      *config.Config
	log      *slog.Logger
	table    *route.Table
	loader   content.Loader
	renderer *render.Renderer
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docview init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLoader creates the content loader for the configured source.
func newLoader(cfg *config.Config) (content.Loader, error) {
	switch cfg.Source {
	case config.SourceHTTP:
		l, err := content.NewHTTPLoader(cfg.BaseURL, cfg.FetchTimeout)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return content.NewDirLoader(cfg.DocsRoot), nil
	}
}

// newViewer loads the config and builds the table, loader and renderer.
// All logging goes to stderr.
func newViewer() (*viewer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	loader, err := newLoader(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating loader: %w", err)
	}
	return &viewer{
		cfg:      cfg,
		log:      cfg.Log.NewLogger(os.Stderr, verbose),
		table:    table,
		loader:   loader,
		renderer: render.New(table, render.WithStyle(cfg.HighlightStyle)),
	}, nil
}
