package nav

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ziadkadry99/docview/internal/content"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// ErrorPanel is shown in place of a document that failed to load.
type ErrorPanel struct {
	Path     route.DocumentPath `json:"path"`
	Message  string             `json:"message"`
	Detail   string             `json:"detail,omitempty"`
	HomeHref string             `json:"home_href"`
}

// Surface receives the results of navigation. Calls for one controller are
// serialized and never made while the controller's state is locked, so a
// slow surface does not block State.
type Surface interface {
	ShowLoading(path route.DocumentPath)
	SetActive(path route.DocumentPath)
	SetExpanded(sections []string)
	ShowDocument(doc *render.Document)
	ShowError(panel ErrorPanel)
}

// Controller owns one navigation state and applies events to it.
type Controller struct {
	table    *route.Table
	loader   content.Loader
	renderer *render.Renderer
	surface  Surface
	log      *slog.Logger

	// deliverMu orders surface calls. It is taken before mu, never after.
	deliverMu sync.Mutex

	mu     sync.Mutex
	state  State
	closed bool
	wg     sync.WaitGroup
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithExpanded sets the sections expanded at startup.
func WithExpanded(sections []string) ControllerOption {
	return func(c *Controller) {
		c.state = NewState(sections)
	}
}

// NewController returns a controller in its startup state.
func NewController(table *route.Table, loader content.Loader, renderer *render.Renderer, surface Surface, opts ...ControllerOption) *Controller {
	c := &Controller{
		table:    table,
		loader:   loader,
		renderer: renderer,
		surface:  surface,
		log:      slog.New(slog.DiscardHandler),
		state:    NewState(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Dispatch applies ev. When the event navigates, the document is fetched in
// the background; Dispatch does not wait for it.
// After Close it does nothing and returns the zero Effect.
func (c *Controller) Dispatch(ctx context.Context, ev Event) Effect {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Effect{}
	}
	next, eff := Transition(c.state, ev, c.table)
	c.state = next
	if eff.Load {
		c.wg.Add(1)
	}
	c.mu.Unlock()

	if eff.Load {
		c.surface.SetActive(next.Active)
	}
	if eff.SectionsChanged {
		c.surface.SetExpanded(next.Expanded.List())
	}
	if eff.Load {
		c.surface.ShowLoading(eff.Path)
		c.log.Debug("navigating", "path", eff.Path, "generation", eff.Generation)
		go c.load(ctx, eff)
	}
	return eff
}

// Reload fetches the current document again. It does nothing before the
// first navigation or after Close.
func (c *Controller) Reload(ctx context.Context) {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	if c.closed || !c.state.HasCurrent {
		c.mu.Unlock()
		return
	}
	c.state.Generation++
	eff := Effect{Load: true, Path: c.state.Current, Generation: c.state.Generation}
	c.wg.Add(1)
	c.mu.Unlock()

	c.surface.ShowLoading(eff.Path)
	c.log.Debug("reloading", "path", eff.Path, "generation", eff.Generation)
	go c.load(ctx, eff)
}

// Wait blocks until every load started so far has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close stops the controller from accepting events and waits for loads in
// flight to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.wg.Wait()
}

// load runs in its own goroutine; the caller has already added it to wg.
func (c *Controller) load(ctx context.Context, eff Effect) {
	defer c.wg.Done()
	doc, err := c.fetch(ctx, eff.Path)

	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	current := c.state.Generation
	c.mu.Unlock()

	if eff.Generation != current {
		c.log.Debug("dropping stale load", "path", eff.Path, "generation", eff.Generation, "current", current)
		return
	}
	if err != nil {
		lf := content.AsLoadFailure(eff.Path, err)
		c.log.Warn("document load failed", "path", eff.Path, "error", err)
		c.surface.ShowError(newErrorPanel(lf))
		return
	}
	c.surface.ShowDocument(doc)
}

func (c *Controller) fetch(ctx context.Context, path route.DocumentPath) (*render.Document, error) {
	raw, err := c.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	doc, err := c.renderer.Render(path, raw)
	if err != nil {
		return nil, content.AsLoadFailure(path, err)
	}
	return doc, nil
}

func newErrorPanel(lf *content.LoadFailure) ErrorPanel {
	p := ErrorPanel{
		Path:     lf.Path,
		Message:  lf.Message,
		HomeHref: route.Href(""),
	}
	if lf.Err != nil {
		p.Detail = lf.Err.Error()
	}
	return p
}
