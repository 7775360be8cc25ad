package nav

import "github.com/ziadkadry99/docview/internal/route"

// Event is an input to the navigation state machine.
type Event interface {
	event()
}

// RouteChanged fires on initial load and on every hash change. Hash is the
// raw URL fragment, e.g. "#/architecture/overview".
type RouteChanged struct {
	Hash string
}

// LinkActivated fires when a rewritten link or a sidebar link is followed.
// Target is a document path, not a route key.
type LinkActivated struct {
	Target route.DocumentPath
}

// SectionToggled fires when a sidebar section header is clicked.
type SectionToggled struct {
	Section string
}

func (RouteChanged) event()   {}
func (LinkActivated) event()  {}
func (SectionToggled) event() {}

// Effect is the work a transition asks the controller to perform.
type Effect struct {
	// Load requests fetching and rendering Path.
	Load       bool
	Path       route.DocumentPath
	Generation uint64
	// SectionsChanged is set when the expanded set differs from before.
	SectionsChanged bool
}

// Transition applies ev to s and returns the next state and the effect to
// perform. s is not modified.
func Transition(s State, ev Event, table *route.Table) (State, Effect) {
	next := s.Clone()

	switch ev := ev.(type) {
	case RouteChanged:
		return navigate(next, table.KeyToPath(route.ParseHash(ev.Hash)))
	case LinkActivated:
		return navigate(next, ev.Target)
	case SectionToggled:
		if ev.Section == "" {
			return next, Effect{}
		}
		next.Expanded.Toggle(ev.Section)
		return next, Effect{SectionsChanged: true}
	default:
		return next, Effect{}
	}
}

// navigate records path as current and active, expands its top-level section
// and schedules the load.
func navigate(s State, path route.DocumentPath) (State, Effect) {
	s.Current = path
	s.HasCurrent = true
	s.Active = path
	s.Generation++

	eff := Effect{Load: true, Path: path, Generation: s.Generation}
	if section := path.Section(); section != "" {
		eff.SectionsChanged = s.Expanded.Expand(section)
	}
	return s, eff
}
