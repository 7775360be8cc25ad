// Package nav implements the viewer's navigation state machine. Transition is
// pure; Controller applies it, drives the content fetch and reports to a
// presentation Surface.
package nav

import (
	"sort"

	"github.com/ziadkadry99/docview/internal/route"
)

// Sections is the set of expanded sidebar sections.
type Sections map[string]struct{}

// NewSections returns a set holding names.
func NewSections(names ...string) Sections {
	s := make(Sections, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is expanded.
func (s Sections) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Expand adds name and reports whether it was newly expanded. Expanding an
// expanded section is a no-op.
func (s Sections) Expand(name string) bool {
	if s.Has(name) {
		return false
	}
	s[name] = struct{}{}
	return true
}

// Toggle flips name and reports whether it is now expanded.
func (s Sections) Toggle(name string) bool {
	if s.Has(name) {
		delete(s, name)
		return false
	}
	s[name] = struct{}{}
	return true
}

// List returns the expanded sections, sorted.
func (s Sections) List() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (s Sections) clone() Sections {
	out := make(Sections, len(s))
	for n := range s {
		out[n] = struct{}{}
	}
	return out
}

// State is the navigation state of one viewer. It is created once with
// defaults and replaced on every transition; it is never persisted.
type State struct {
	// Current is the document being displayed; meaningful only when
	// HasCurrent is set.
	Current    route.DocumentPath
	HasCurrent bool
	// Active is the navigation element marked active. At most one is.
	Active   route.DocumentPath
	Expanded Sections
	// Generation increases with every navigation. Load results carrying an
	// older generation are stale.
	Generation uint64
}

// NewState returns the startup state with the given sections expanded.
func NewState(expanded []string) State {
	return State{Expanded: NewSections(expanded...)}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Expanded = s.Expanded.clone()
	return s
}
