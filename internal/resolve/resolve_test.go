package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docview/internal/route"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		href string
		want Kind
	}{
		{"", KindEmpty},
		{"http://example.com", KindExternal},
		{"https://example.com/x", KindExternal},
		{"mailto:ops@example.com", KindExternal},
		{"#section", KindAnchor},
		{"#", KindAnchor},
		{"./getting-started.md", KindInternal},
		{"../architecture/overview.md", KindInternal},
		{"storage", KindInternal},
		{"/datatype.md", KindInternal},
		{"/assets/logo.svg", KindUnresolved},
		{"ftp://files.example.com/a", KindUnresolved},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.href), "href %q", tt.href)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		current route.DocumentPath
		href    string
		want    route.DocumentPath
	}{
		{"dot slash", "architecture/overview.md", "./getting-started.md", "architecture/getting-started.md"},
		{"parent", "database/BACKUP_MONGODB.md", "../architecture/overview.md", "architecture/overview.md"},
		{"two parents", "a/b/c.md", "../../x.md", "x.md"},
		{"one parent of two", "a/b/c.md", "../x.md", "a/x.md"},
		{"above root", "a.md", "../../x.md", "x.md"},
		{"sibling", "architecture/overview.md", "core-api.md", "architecture/core-api.md"},
		{"sibling at root", "index.md", "storage.md", "storage.md"},
		{"bare name", "architecture/overview.md", "diagrams", "architecture/diagrams.md"},
		{"bare name at root", "index.md", "limitations", "limitations.md"},
		{"root relative", "architecture/overview.md", "/datatype.md", "datatype.md"},
		{"double slashes", "architecture/overview.md", "./sub//page.md", "architecture/sub/page.md"},
		{"non markdown kept", "architecture/overview.md", "diagram.png", "architecture/diagram.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.current, tt.href)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIdempotentAtRoot(t *testing.T) {
	got, ok := Resolve("index.md", "architecture/overview.md")
	require.True(t, ok)
	assert.Equal(t, route.DocumentPath("architecture/overview.md"), got)
}

func TestResolveNonInternal(t *testing.T) {
	for _, href := range []string{"", "https://example.com/x", "#section", "/assets/logo.svg"} {
		_, ok := Resolve("architecture/overview.md", href)
		assert.False(t, ok, "href %q", href)
	}
}

func TestResolverLink(t *testing.T) {
	table, err := route.NewTable([]route.Entry{
		{Key: "", Path: "index.md"},
		{Key: "architecture/overview", Path: "architecture/overview.md"},
		{Key: "architecture/getting-started", Path: "architecture/getting-started.md"},
	}, "index.md")
	require.NoError(t, err)
	r := New(table)

	res := r.Link("architecture/overview.md", "./getting-started.md")
	assert.Equal(t, KindInternal, res.Kind)
	assert.Equal(t, route.DocumentPath("architecture/getting-started.md"), res.Target)
	assert.Equal(t, route.RouteKey("architecture/getting-started"), res.Key)
	assert.Equal(t, "#/architecture/getting-started", res.NewHref)
	assert.True(t, res.Rewritten())
	assert.True(t, r.Known(res))

	res = r.Link("architecture/overview.md", "../index.md")
	assert.Equal(t, "#/", res.NewHref)

	res = r.Link("architecture/overview.md", "./unlisted.md")
	assert.Equal(t, "#/architecture/unlisted", res.NewHref)
	assert.False(t, r.Known(res))

	res = r.Link("architecture/overview.md", "https://example.com/x")
	assert.Equal(t, KindExternal, res.Kind)
	assert.Equal(t, "https://example.com/x", res.NewHref)
	assert.False(t, res.Rewritten())

	res = r.Link("architecture/overview.md", "#section")
	assert.Equal(t, "#section", res.NewHref)
}
