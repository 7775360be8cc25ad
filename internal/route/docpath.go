package route

import (
	"regexp"
	"strings"
)

// MarkdownExt is the extension every routed document carries.
const MarkdownExt = ".md"

// DocumentPath identifies a Markdown file relative to the documentation root,
// e.g. "architecture/overview.md".
type DocumentPath string

// RouteKey identifies a logical document in the hash fragment. The empty key
// is the index.
type RouteKey string

var slashRun = regexp.MustCompile(`/+`)

// String implements fmt.Stringer.
func (p DocumentPath) String() string { return string(p) }

// IsMarkdown reports whether the path carries the .md extension.
func (p DocumentPath) IsMarkdown() bool {
	return strings.HasSuffix(string(p), MarkdownExt)
}

// Dir returns the path up to and including its last "/", or "" for documents
// at the root.
func (p DocumentPath) Dir() string {
	s := string(p)
	return s[:strings.LastIndex(s, "/")+1]
}

// TrimExt returns the path without a trailing .md extension.
func (p DocumentPath) TrimExt() string {
	return strings.TrimSuffix(string(p), MarkdownExt)
}

// Section returns the top-level directory component ("architecture" for
// "architecture/overview.md"), or "" for root documents.
func (p DocumentPath) Section() string {
	s := string(p)
	i := strings.Index(s, "/")
	if i <= 0 {
		return ""
	}
	return s[:i]
}

// Base returns the final path component.
func (p DocumentPath) Base() string {
	s := string(p)
	return s[strings.LastIndex(s, "/")+1:]
}

// Parent strips one component from the end of dir: everything from and
// including the last "/" is removed. A dir without "/" becomes "". Parent
// never fails, so walking above the root simply stays at "".
func Parent(dir string) string {
	i := strings.LastIndex(dir, "/")
	if i < 0 {
		return ""
	}
	return dir[:i]
}

// Join concatenates dir and name with exactly one "/" between them. An empty
// dir yields name unchanged.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	return strings.TrimSuffix(dir, "/") + "/" + strings.TrimPrefix(name, "/")
}

// EnsureExt appends .md to bare route names: values without the extension and
// without any "." at all.
func EnsureExt(s string) string {
	if !strings.HasSuffix(s, MarkdownExt) && !strings.Contains(s, ".") {
		return s + MarkdownExt
	}
	return s
}

// Normalize collapses runs of "/" and strips a leading "./" or "/".
func Normalize(s string) DocumentPath {
	s = slashRun.ReplaceAllString(s, "/")
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimPrefix(s, "/")
	return DocumentPath(s)
}
