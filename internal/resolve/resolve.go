// Package resolve turns links found inside rendered documents into hash
// routes. Only a narrow set of shapes is resolved; everything else is left
// exactly as authored.
package resolve

import (
	"strings"

	"github.com/ziadkadry99/docview/internal/route"
)

// Kind classifies an href found in rendered output.
type Kind string

const (
	KindEmpty      Kind = "empty"
	KindExternal   Kind = "external"
	KindAnchor     Kind = "anchor"
	KindInternal   Kind = "internal"
	KindUnresolved Kind = "unresolved"
)

var externalPrefixes = []string{"http://", "https://", "mailto:"}

// Classify returns the kind of href. The first matching rule wins: empty,
// external scheme, in-page anchor, internal document reference. Any other
// shape is unresolved.
func Classify(href string) Kind {
	if href == "" {
		return KindEmpty
	}
	for _, p := range externalPrefixes {
		if strings.HasPrefix(href, p) {
			return KindExternal
		}
	}
	if strings.HasPrefix(href, "#") {
		return KindAnchor
	}
	if strings.HasSuffix(href, route.MarkdownExt) ||
		(!strings.Contains(href, "://") && !strings.HasPrefix(href, "/")) {
		return KindInternal
	}
	return KindUnresolved
}

// Resolve computes the document an internal href points at, relative to the
// document at current. It reports false when href is not internal.
func Resolve(current route.DocumentPath, href string) (route.DocumentPath, bool) {
	if Classify(href) != KindInternal {
		return "", false
	}

	currentDir := current.Dir()

	var target string
	switch {
	case strings.HasPrefix(href, "./"):
		target = currentDir + strings.TrimPrefix(href, "./")
	case strings.HasPrefix(href, "../"):
		segments := strings.Split(href, "../")
		dir := strings.TrimSuffix(currentDir, "/")
		for i := 0; i < len(segments)-1; i++ {
			dir = route.Parent(dir)
		}
		// An empty dir leaves a leading "/" that Normalize removes.
		target = dir + "/" + segments[len(segments)-1]
	case !strings.HasPrefix(href, "/"):
		target = currentDir + href
	default:
		target = strings.TrimPrefix(href, "/")
	}

	return route.Normalize(route.EnsureExt(target)), true
}

// Result describes what happened to one href.
type Result struct {
	Kind Kind `json:"kind"`
	// Href is the href as authored.
	Href string `json:"href"`
	// Target is the resolved document; empty unless Kind is KindInternal.
	Target route.DocumentPath `json:"target,omitempty"`
	// Key is Target's route key.
	Key route.RouteKey `json:"key"`
	// NewHref is what the link should point at after rewriting. It equals
	// Href for every kind but KindInternal.
	NewHref string `json:"new_href"`
}

// Rewritten reports whether the link must be rewritten and rebound.
func (r Result) Rewritten() bool { return r.Kind == KindInternal }

// Resolver resolves links against a route table.
type Resolver struct {
	table *route.Table
}

// New returns a Resolver backed by table.
func New(table *route.Table) *Resolver {
	return &Resolver{table: table}
}

// Link classifies and, for internal references, resolves href as found in the
// document at current.
func (r *Resolver) Link(current route.DocumentPath, href string) Result {
	res := Result{Kind: Classify(href), Href: href, NewHref: href}
	if res.Kind != KindInternal {
		return res
	}
	target, _ := Resolve(current, href)
	res.Target = target
	res.Key = r.table.PathToKey(target)
	res.NewHref = route.Href(res.Key)
	return res
}

// Known reports whether a resolved result targets a routed document.
func (r *Resolver) Known(res Result) bool {
	return res.Kind == KindInternal && r.table.Contains(res.Target)
}
