package site

import (
	"context"
	"strings"
	"sync"

	"github.com/ziadkadry99/docview/internal/content"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// maxSearchContent bounds the text indexed per document.
const maxSearchContent = 2000

// SearchEntry represents a single searchable page in the documentation.
type SearchEntry struct {
	Key     route.RouteKey     `json:"key"`
	Path    route.DocumentPath `json:"path"`
	Href    string             `json:"href"`
	Title   string             `json:"title"`
	Summary string             `json:"summary"`
	Content string             `json:"content"`
}

// BuildSearchIndex loads every routed document and builds a search index.
// Documents that fail to load are skipped and reported in the returned
// failures.
func BuildSearchIndex(ctx context.Context, table *route.Table, loader content.Loader) ([]SearchEntry, []*content.LoadFailure) {
	var (
		entries  []SearchEntry
		failures []*content.LoadFailure
	)
	for _, e := range table.Entries() {
		raw, err := loader.Load(ctx, e.Path)
		if err != nil {
			failures = append(failures, content.AsLoadFailure(e.Path, err))
			continue
		}
		entries = append(entries, parseMarkdownForSearch(e, raw))
	}
	return entries, failures
}

// parseMarkdownForSearch extracts title, summary, and content from a document.
func parseMarkdownForSearch(e route.Entry, raw []byte) SearchEntry {
	meta, body := render.SplitFrontmatter(raw)
	entry := SearchEntry{
		Key:     e.Key,
		Path:    e.Path,
		Href:    route.Href(e.Key),
		Title:   meta.Title,
		Summary: meta.Summary,
	}

	lines := strings.Split(string(body), "\n")
	foundTitle := entry.Title != ""
	var cleanLines []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		cleanLines = append(cleanLines, trimmed)

		if !foundTitle && strings.HasPrefix(trimmed, "# ") {
			entry.Title = strings.TrimPrefix(trimmed, "# ")
			foundTitle = true
			continue
		}
		if entry.Summary == "" && !strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "```") {
			entry.Summary = trimmed
		}
	}

	text := strings.Join(cleanLines, " ")
	if len(text) > maxSearchContent {
		text = text[:maxSearchContent]
	}
	entry.Content = text

	if entry.Title == "" {
		entry.Title = string(e.Path)
	}
	return entry
}

// searchCache holds the search index between file changes.
type searchCache struct {
	table  *route.Table
	loader content.Loader

	mu      sync.Mutex
	entries []SearchEntry
	built   bool
}

func (c *searchCache) get(ctx context.Context) ([]SearchEntry, []*content.LoadFailure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.built {
		return c.entries, nil
	}
	entries, failures := BuildSearchIndex(ctx, c.table, c.loader)
	if ctx.Err() == nil {
		c.entries, c.built = entries, true
	}
	return entries, failures
}

// titles maps each indexed document to its title.
func (c *searchCache) titles(ctx context.Context) map[route.DocumentPath]string {
	entries, _ := c.get(ctx)
	out := make(map[route.DocumentPath]string, len(entries))
	for _, e := range entries {
		out[e.Path] = e.Title
	}
	return out
}

func (c *searchCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries, c.built = nil, false
}
