package nav

import (
	"context"

	"github.com/ziadkadry99/docview/internal/content"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// View is the outcome of a one-shot navigation.
type View struct {
	Path     route.DocumentPath `json:"path"`
	Key      route.RouteKey     `json:"key"`
	Active   route.DocumentPath `json:"active"`
	Expanded []string           `json:"expanded"`
	Document *render.Document   `json:"document,omitempty"`
	Error    *ErrorPanel        `json:"error,omitempty"`
}

// Visit runs ev against a fresh startup state and waits for the load to
// finish. It serves callers without a live page, such as the JSON API.
func Visit(ctx context.Context, table *route.Table, loader content.Loader, renderer *render.Renderer, ev Event, opts ...ControllerOption) View {
	rec := &Recorder{}
	c := NewController(table, loader, renderer, rec, opts...)
	c.Dispatch(ctx, ev)
	c.Close()

	st := c.State()
	return View{
		Path:     st.Current,
		Key:      table.PathToKey(st.Current),
		Active:   st.Active,
		Expanded: st.Expanded.List(),
		Document: rec.Document(),
		Error:    rec.Error(),
	}
}
