package nav

import (
	"context"
	"fmt"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docview/internal/content"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

func testDocs() fstest.MapFS {
	return fstest.MapFS{
		"index.md":                 {Data: []byte("# Home\n\nSee [overview](architecture/overview.md).\n")},
		"architecture/overview.md": {Data: []byte("# Overview\n\n[API](./core-api.md)\n")},
		"architecture/core-api.md": {Data: []byte("# Core API\n")},
		"storage.md":               {Data: []byte("# Storage\n")},
	}
}

func newTestController(loader content.Loader, surface Surface) *Controller {
	table := testTable()
	return NewController(table, loader, render.New(table), surface)
}

func TestControllerShowsDocument(t *testing.T) {
	rec := &Recorder{}
	c := newTestController(content.NewFSLoader(testDocs()), rec)

	c.Dispatch(context.Background(), RouteChanged{Hash: "#/architecture/overview"})
	c.Wait()

	doc := rec.Document()
	require.NotNil(t, doc)
	assert.Equal(t, "Overview", doc.Title)
	assert.Contains(t, doc.HTML, `href="#/architecture/core-api"`)
	assert.Nil(t, rec.Error())
	assert.Equal(t, route.DocumentPath("architecture/overview.md"), rec.Active())
	assert.Equal(t, []route.DocumentPath{"architecture/overview.md"}, rec.Loading())
}

func TestControllerLoadFailureKeepsState(t *testing.T) {
	rec := &Recorder{}
	c := newTestController(content.NewFSLoader(testDocs()), rec)

	c.Dispatch(context.Background(), RouteChanged{Hash: "#/database/BACKUP_NEO4J"})
	c.Wait()

	panel := rec.Error()
	require.NotNil(t, panel)
	assert.Equal(t, "Failed to load database/BACKUP_NEO4J.md", panel.Message)
	assert.Equal(t, "#/", panel.HomeHref)
	assert.Nil(t, rec.Document())

	st := c.State()
	assert.Equal(t, route.DocumentPath("database/BACKUP_NEO4J.md"), st.Current)
	assert.True(t, st.Expanded.Has("database"))
}

// gateLoader blocks loads of gated paths until their channel is closed.
type gateLoader struct {
	inner content.Loader
	gates map[route.DocumentPath]chan struct{}
}

func (g *gateLoader) Load(ctx context.Context, p route.DocumentPath) ([]byte, error) {
	if ch, ok := g.gates[p]; ok {
		<-ch
	}
	return g.inner.Load(ctx, p)
}

func TestControllerDropsStaleLoads(t *testing.T) {
	slow := make(chan struct{})
	loader := &gateLoader{
		inner: content.NewFSLoader(testDocs()),
		gates: map[route.DocumentPath]chan struct{}{"architecture/overview.md": slow},
	}
	rec := &Recorder{}
	c := newTestController(loader, rec)

	c.Dispatch(context.Background(), RouteChanged{Hash: "#/architecture/overview"})
	c.Dispatch(context.Background(), LinkActivated{Target: "storage.md"})
	close(slow)
	c.Wait()

	doc := rec.Document()
	require.NotNil(t, doc)
	assert.Equal(t, "Storage", doc.Title)
	assert.Equal(t, uint64(2), c.State().Generation)
}

func TestControllerReload(t *testing.T) {
	docs := testDocs()
	rec := &Recorder{}
	c := newTestController(content.NewFSLoader(docs), rec)

	c.Reload(context.Background())
	c.Wait()
	assert.Nil(t, rec.Document())

	c.Dispatch(context.Background(), LinkActivated{Target: "storage.md"})
	c.Wait()

	docs["storage.md"] = &fstest.MapFile{Data: []byte("# Storage v2\n")}
	c.Reload(context.Background())
	c.Wait()

	require.NotNil(t, rec.Document())
	assert.Equal(t, "Storage v2", rec.Document().Title)
	assert.Equal(t, uint64(2), c.State().Generation)
}

type failingLoader struct{}

func (failingLoader) Load(_ context.Context, p route.DocumentPath) ([]byte, error) {
	return nil, fmt.Errorf("connection refused")
}

func TestControllerWrapsForeignErrors(t *testing.T) {
	rec := &Recorder{}
	c := newTestController(failingLoader{}, rec)

	c.Dispatch(context.Background(), RouteChanged{Hash: "#/storage"})
	c.Wait()

	panel := rec.Error()
	require.NotNil(t, panel)
	assert.Equal(t, "Failed to load storage.md", panel.Message)
	assert.Equal(t, "connection refused", panel.Detail)
}

func TestVisit(t *testing.T) {
	table := testTable()
	v := Visit(context.Background(), table, content.NewFSLoader(testDocs()), render.New(table),
		RouteChanged{Hash: "#/nonexistent/page"}, WithExpanded([]string{"deployment"}))

	assert.Equal(t, route.DocumentPath("index.md"), v.Path)
	assert.Equal(t, route.RouteKey(""), v.Key)
	assert.Equal(t, []string{"deployment"}, v.Expanded)
	require.NotNil(t, v.Document)
	assert.Contains(t, v.Document.HTML, `href="#/architecture/overview"`)
	assert.Nil(t, v.Error)
}

// stallSurface blocks in ShowDocument until release is closed.
type stallSurface struct {
	Recorder
	entered chan struct{}
	release chan struct{}
}

func (s *stallSurface) ShowDocument(doc *render.Document) {
	close(s.entered)
	<-s.release
	s.Recorder.ShowDocument(doc)
}

func TestControllerStateNotBlockedBySurface(t *testing.T) {
	surface := &stallSurface{entered: make(chan struct{}), release: make(chan struct{})}
	c := newTestController(content.NewFSLoader(testDocs()), surface)

	c.Dispatch(context.Background(), RouteChanged{Hash: "#/storage"})
	<-surface.entered

	got := make(chan State, 1)
	go func() { got <- c.State() }()
	select {
	case st := <-got:
		assert.Equal(t, route.DocumentPath("storage.md"), st.Current)
	case <-time.After(time.Second):
		t.Fatal("State blocked while the surface was stalled")
	}

	close(surface.release)
	c.Wait()
	require.NotNil(t, surface.Document())
	assert.Equal(t, "Storage", surface.Document().Title)
}

func TestControllerClose(t *testing.T) {
	rec := &Recorder{}
	c := newTestController(content.NewFSLoader(testDocs()), rec)

	c.Dispatch(context.Background(), LinkActivated{Target: "storage.md"})
	c.Close()
	require.NotNil(t, rec.Document())

	eff := c.Dispatch(context.Background(), RouteChanged{Hash: "#/architecture/overview"})
	assert.False(t, eff.Load)
	c.Reload(context.Background())
	c.Wait()

	assert.Equal(t, []route.DocumentPath{"storage.md"}, rec.Loading())
	assert.Equal(t, route.DocumentPath("storage.md"), c.State().Current)
}
