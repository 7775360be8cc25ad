package site

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/docview/internal/nav"
	"github.com/ziadkadry99/docview/internal/resolve"
	"github.com/ziadkadry99/docview/internal/route"
)

// routesResponse is the JSON response for the routes endpoint.
type routesResponse struct {
	Index    route.DocumentPath `json:"index"`
	Sections []string           `json:"sections"`
	Routes   []route.Entry      `json:"routes"`
}

// resolveResponse is the JSON response for the resolve endpoint.
type resolveResponse struct {
	resolve.Result
	Known bool `json:"known"`
}

// shellData feeds the shell page template.
type shellData struct {
	Title    string
	Sidebar  template.HTML
	Expanded []string
}

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	tree := BuildTree(s.table.Entries(), s.search.titles(r.Context()))

	var buf bytes.Buffer
	err := s.shell.Execute(&buf, shellData{
		Title:    s.opts.Title,
		Sidebar:  tree.ToHTML(s.table.Index(), s.opts.Expanded),
		Expanded: s.opts.Expanded,
	})
	if err != nil {
		s.log.Error("render shell", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleHighlightCSS(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.WriteCSS(&buf); err != nil {
		s.log.Error("write highlight css", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleSearchIndex(w http.ResponseWriter, r *http.Request) {
	entries, failures := s.search.get(r.Context())
	for _, f := range failures {
		s.log.Warn("search index: skipping document", "path", f.Path, "error", f.Err)
	}
	if entries == nil {
		entries = []SearchEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	p := route.DocumentPath(chi.URLParam(r, "*"))
	data, err := s.loader.Load(r.Context(), p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, routesResponse{
		Index:    s.table.Index(),
		Sections: s.table.Sections(),
		Routes:   s.table.Entries(),
	})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	view := nav.Visit(r.Context(), s.table, s.loader, s.renderer,
		nav.RouteChanged{Hash: r.URL.Query().Get("hash")},
		nav.WithExpanded(s.opts.Expanded),
		nav.WithLogger(s.log),
	)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	current := q.Get("current")
	if current == "" {
		current = string(s.table.Index())
	}
	res := s.renderer.Resolver().Link(route.DocumentPath(current), q.Get("href"))
	writeJSON(w, http.StatusOK, resolveResponse{
		Result: res,
		Known:  s.renderer.Resolver().Known(res),
	})
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": s.hub.Len(),
		"ids":   s.hub.IDs(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
