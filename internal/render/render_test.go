package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docview/internal/resolve"
	"github.com/ziadkadry99/docview/internal/route"
)

func testTable() *route.Table {
	table, err := route.NewTable([]route.Entry{
		{Key: "", Path: "index.md"},
		{Key: "architecture/overview", Path: "architecture/overview.md"},
		{Key: "architecture/getting-started", Path: "architecture/getting-started.md"},
		{Key: "database/BACKUP_MONGODB", Path: "database/BACKUP_MONGODB.md"},
	}, "index.md")
	if err != nil {
		panic(err)
	}
	return table
}

func TestRenderRewritesInternalLinks(t *testing.T) {
	r := New(testTable())
	src := "# Overview\n\nSee [start](./getting-started.md) and [backups](../database/BACKUP_MONGODB.md).\n"

	doc, err := r.Render("architecture/overview.md", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "Overview", doc.Title)
	assert.Equal(t, route.RouteKey("architecture/overview"), doc.Key)
	assert.Contains(t, doc.HTML, `href="#/architecture/getting-started"`)
	assert.Contains(t, doc.HTML, `data-nav-path="architecture/getting-started.md"`)
	assert.Contains(t, doc.HTML, `href="#/database/BACKUP_MONGODB"`)
	require.Len(t, doc.Links, 2)
	assert.Equal(t, resolve.KindInternal, doc.Links[1].Kind)
}

func TestRenderLeavesOtherLinks(t *testing.T) {
	r := New(testTable())
	src := "[ext](https://example.com/x) [mail](mailto:a@b.c) [anchor](#section) [asset](/assets/logo.svg)\n"

	doc, err := r.Render("index.md", []byte(src))
	require.NoError(t, err)

	assert.Contains(t, doc.HTML, `href="https://example.com/x"`)
	assert.Contains(t, doc.HTML, `href="mailto:a@b.c"`)
	assert.Contains(t, doc.HTML, `href="#section"`)
	assert.Contains(t, doc.HTML, `href="/assets/logo.svg"`)
	assert.NotContains(t, doc.HTML, NavAttr)
}

func TestRenderStripsFrontmatter(t *testing.T) {
	r := New(testTable())
	src := "---\ntitle: Backup Guide\nsummary: How backups run\n---\nBody text.\n"

	doc, err := r.Render("database/BACKUP_MONGODB.md", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "Backup Guide", doc.Title)
	assert.NotContains(t, doc.HTML, "title:")
	assert.NotContains(t, doc.HTML, "<hr")
	assert.Contains(t, doc.HTML, "Body text.")
}

func TestRenderPreservesLineBreaks(t *testing.T) {
	doc, err := New(testTable()).Render("index.md", []byte("line one\nline two\n"))
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "<br")
}

func TestRenderHighlightsCode(t *testing.T) {
	r := New(testTable())

	doc, err := r.Render("index.md", []byte("```go\nfunc main() {}\n```\n"))
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "chroma")

	doc, err = r.Render("index.md", []byte("```notalanguage\nSELECT 1;\n```\n"))
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "SELECT 1;")
}

func TestRenderTitleFallsBackToFilename(t *testing.T) {
	doc, err := New(testTable()).Render("architecture/overview.md", []byte("no heading here"))
	require.NoError(t, err)
	assert.Equal(t, "overview", doc.Title)
}

func TestWriteCSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(testTable(), WithStyle("monokai")).WriteCSS(&buf))
	assert.True(t, strings.Contains(buf.String(), ".chroma"))
}

func TestStripRenderedFrontmatter(t *testing.T) {
	out := renderedFrontmatter.ReplaceAllString("---\ntitle: x\n---\n<p>body</p>", "")
	assert.Equal(t, "<p>body</p>", out)
}

func TestSplitFrontmatterWithoutBlock(t *testing.T) {
	meta, body := SplitFrontmatter([]byte("# Title\n"))
	assert.Empty(t, meta.Title)
	assert.Equal(t, "# Title\n", string(body))
}
