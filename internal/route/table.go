package route

import (
	"fmt"
	"sort"
	"strings"
)

// HashPrefix precedes every route key in the URL fragment.
const HashPrefix = "#/"

// Entry is one hand-authored (RouteKey, DocumentPath) pair.
type Entry struct {
	Key  RouteKey     `json:"key" yaml:"key" koanf:"key"`
	Path DocumentPath `json:"path" yaml:"path" koanf:"path"`
}

// Table is the static, bidirectional association between route keys and
// document paths. It is built once and never modified.
type Table struct {
	entries []Entry
	byKey   map[RouteKey]DocumentPath
	byPath  map[string]RouteKey // keyed by path with .md stripped
	index   DocumentPath
}

// NewTable validates entries and builds the lookup maps. indexPath names the
// document unknown keys fall back to; it must be one of the entries.
func NewTable(entries []Entry, indexPath DocumentPath) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byKey:   make(map[RouteKey]DocumentPath, len(entries)),
		byPath:  make(map[string]RouteKey, len(entries)),
		index:   indexPath,
	}

	for _, e := range entries {
		if !e.Path.IsMarkdown() {
			return nil, fmt.Errorf("route %q: path %q does not end in %s", e.Key, e.Path, MarkdownExt)
		}
		if strings.HasPrefix(string(e.Key), "/") {
			return nil, fmt.Errorf("route %q: key must not start with /", e.Key)
		}
		if prev, ok := t.byKey[e.Key]; ok {
			return nil, fmt.Errorf("route %q: duplicate key (already mapped to %q)", e.Key, prev)
		}
		stripped := e.Path.TrimExt()
		if prev, ok := t.byPath[stripped]; ok {
			return nil, fmt.Errorf("path %q: mapped by both %q and %q", e.Path, prev, e.Key)
		}
		t.byKey[e.Key] = e.Path
		t.byPath[stripped] = e.Key
		t.entries = append(t.entries, e)
	}

	if _, ok := t.byPath[indexPath.TrimExt()]; !ok {
		return nil, fmt.Errorf("index document %q is not in the route table", indexPath)
	}

	return t, nil
}

// KeyToPath returns the document mapped to key. Unknown keys fall back to the
// index document, so the lookup is total.
func (t *Table) KeyToPath(key RouteKey) DocumentPath {
	if p, ok := t.byKey[key]; ok {
		return p
	}
	return t.index
}

// Lookup returns the document mapped to key and whether the key is known.
func (t *Table) Lookup(key RouteKey) (DocumentPath, bool) {
	p, ok := t.byKey[key]
	return p, ok
}

// PathToKey returns the route key for path. Documents missing from the table
// get their own path, without the .md extension, as key.
func (t *Table) PathToKey(path DocumentPath) RouteKey {
	stripped := path.TrimExt()
	if k, ok := t.byPath[stripped]; ok {
		return k
	}
	return RouteKey(stripped)
}

// Contains reports whether path is one of the routed documents.
func (t *Table) Contains(path DocumentPath) bool {
	_, ok := t.byPath[path.TrimExt()]
	return ok
}

// Index returns the index document path.
func (t *Table) Index() DocumentPath { return t.index }

// Entries returns the entries in the order they were authored.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Sections returns the distinct top-level directories of routed documents,
// sorted.
func (t *Table) Sections() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range t.entries {
		s := e.Path.Section()
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Href returns the URL fragment that routes to key.
func Href(key RouteKey) string {
	return HashPrefix + string(key)
}

// ParseHash decodes a URL fragment such as "#/architecture/overview" into a
// route key. "", "#" and "#/" decode to the index key.
func ParseHash(raw string) RouteKey {
	raw = strings.TrimPrefix(raw, "#")
	raw = strings.TrimPrefix(raw, "/")
	return RouteKey(raw)
}
