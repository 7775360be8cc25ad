// Package render converts Markdown documents into HTML fragments whose
// internal links route through the viewer.
package render

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/docview/internal/resolve"
	"github.com/ziadkadry99/docview/internal/route"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// renderedFrontmatter matches a frontmatter block that survived into the
// rendered output.
var renderedFrontmatter = regexp.MustCompile(`^---[\s\S]*?---\n`)

// Document is a rendered Markdown document.
type Document struct {
	Path  route.DocumentPath `json:"path"`
	Key   route.RouteKey     `json:"key"`
	Title string             `json:"title"`
	HTML  string             `json:"html"`
	// Links lists every href found in the document and what became of it.
	Links []resolve.Result `json:"links,omitempty"`
}

// Renderer turns raw Markdown into Documents.
type Renderer struct {
	md       goldmark.Markdown
	resolver *resolve.Resolver
	table    *route.Table
	style    string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle selects the chroma style for code blocks.
func WithStyle(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.style = name
		}
	}
}

// New returns a Renderer resolving links against table.
func New(table *route.Table, opts ...Option) *Renderer {
	r := &Renderer{
		resolver: resolve.New(table),
		table:    table,
		style:    DefaultStyle,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(r.style),
				// Unknown or missing fence languages are detected from the code.
				highlighting.WithGuessLanguage(true),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)
	return r
}

// Resolver returns the link resolver the renderer rewrites with.
func (r *Renderer) Resolver() *resolve.Resolver { return r.resolver }

// Render converts raw, the content of the document at p, into a Document.
func (r *Renderer) Render(p route.DocumentPath, raw []byte) (*Document, error) {
	meta, body := SplitFrontmatter(raw)

	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	out, links, err := RewriteLinks(buf.String(), p, r.resolver)
	if err != nil {
		return nil, fmt.Errorf("rewriting links: %w", err)
	}
	out = renderedFrontmatter.ReplaceAllString(out, "")

	title := meta.Title
	if title == "" {
		title = extractTitle(string(body), p)
	}

	return &Document{
		Path:  p,
		Key:   r.table.PathToKey(p),
		Title: title,
		HTML:  out,
		Links: links,
	}, nil
}

// WriteCSS writes the stylesheet for the configured highlighting style.
func (r *Renderer) WriteCSS(w io.Writer) error {
	style := styles.Get(r.style)
	return chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(w, style)
}

// extractTitle pulls the first # heading from markdown content, or falls back to the filename.
func extractTitle(content string, p route.DocumentPath) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return strings.TrimSuffix(path.Base(string(p)), route.MarkdownExt)
}
