package nav

import (
	"sync"

	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// Recorder is a Surface that keeps what it was last shown. It backs one-shot
// navigations that have no live page.
type Recorder struct {
	mu       sync.Mutex
	loading  []route.DocumentPath
	active   route.DocumentPath
	expanded []string
	doc      *render.Document
	panel    *ErrorPanel
}

func (r *Recorder) ShowLoading(path route.DocumentPath) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = append(r.loading, path)
}

func (r *Recorder) SetActive(path route.DocumentPath) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = path
}

func (r *Recorder) SetExpanded(sections []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expanded = append([]string(nil), sections...)
}

func (r *Recorder) ShowDocument(doc *render.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc, r.panel = doc, nil
}

func (r *Recorder) ShowError(panel ErrorPanel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc, r.panel = nil, &panel
}

// Document returns the document shown last, or nil.
func (r *Recorder) Document() *render.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc
}

// Error returns the error panel shown last, or nil.
func (r *Recorder) Error() *ErrorPanel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.panel
}

// Active returns the active path.
func (r *Recorder) Active() route.DocumentPath {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Loading returns every path a loading indicator was shown for.
func (r *Recorder) Loading() []route.DocumentPath {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]route.DocumentPath(nil), r.loading...)
}
