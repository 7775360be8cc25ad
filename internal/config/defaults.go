package config

import "github.com/ziadkadry99/docview/internal/route"

// DefaultRoutes is the hand-maintained route table of the documentation set
// docview was built for.
var DefaultRoutes = []route.Entry{
	{Key: "", Path: "index.md"},
	{Key: "architecture/getting-started", Path: "architecture/getting-started.md"},
	{Key: "architecture/overview", Path: "architecture/overview.md"},
	{Key: "architecture/api-layer-details", Path: "architecture/api-layer-details.md"},
	{Key: "architecture/core-api", Path: "architecture/core-api.md"},
	{Key: "architecture/data-type-detection-patterns", Path: "architecture/data-type-detection-patterns.md"},
	{Key: "architecture/database-schemas", Path: "architecture/database-schemas.md"},
	{Key: "architecture/diagrams", Path: "architecture/diagrams.md"},
	{Key: "database/BACKUP_MONGODB", Path: "database/BACKUP_MONGODB.md"},
	{Key: "database/BACKUP_NEO4J", Path: "database/BACKUP_NEO4J.md"},
	{Key: "database/BACKUP_POSTGRES", Path: "database/BACKUP_POSTGRES.md"},
	{Key: "deployment/BACKUP_INTEGRATION", Path: "deployment/BACKUP_INTEGRATION.md"},
	{Key: "how_it_works", Path: "how_it_works.md"},
	{Key: "datatype", Path: "datatype.md"},
	{Key: "storage", Path: "storage.md"},
	{Key: "release_life_cycle", Path: "release_life_cycle.md"},
	{Key: "limitations", Path: "limitations.md"},
}

// DefaultExpanded are the sidebar sections open at startup.
var DefaultExpanded = []string{"architecture", "database", "deployment"}

// DefaultExcludes are glob patterns skipped when scanning for documents.
var DefaultExcludes = []string{
	"node_modules/**",
	"vendor/**",
	".git/**",
	"_site/**",
	"**/_*.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:          "Documentation",
		DocsRoot:       "docs",
		Source:         SourceFS,
		Index:          "index.md",
		Port:           8080,
		Watch:          true,
		HighlightStyle: "github",
		Expanded:       append([]string(nil), DefaultExpanded...),
		Routes:         append([]route.Entry(nil), DefaultRoutes...),
		Include:        []string{"**/*.md"},
		Exclude:        append([]string(nil), DefaultExcludes...),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
