package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/docview/internal/resolve"
	"github.com/ziadkadry99/docview/internal/route"
)

// NavAttr marks a rewritten link and carries the document path that
// activating it navigates to.
const NavAttr = "data-nav-path"

// RewriteLinks rewrites every internal <a href> in fragment to its hash route
// and binds it for in-viewer navigation. Other links are left untouched. It
// returns the rewritten fragment and one result per anchor with an href
// attribute, in document order.
func RewriteLinks(fragment string, current route.DocumentPath, r *resolve.Resolver) (string, []resolve.Result, error) {
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), container)
	if err != nil {
		return "", nil, err
	}

	var results []resolve.Result
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			if i := attrIndex(n, "href"); i >= 0 {
				res := r.Link(current, n.Attr[i].Val)
				results = append(results, res)
				if res.Rewritten() {
					n.Attr[i].Val = res.NewHref
					setAttr(n, NavAttr, string(res.Target))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	var b strings.Builder
	for _, n := range nodes {
		walk(n)
		if err := html.Render(&b, n); err != nil {
			return "", nil, err
		}
	}
	return b.String(), results, nil
}

func attrIndex(n *html.Node, key string) int {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return i
		}
	}
	return -1
}

// setAttr replaces any previous value so stale bindings never survive.
func setAttr(n *html.Node, key, val string) {
	if i := attrIndex(n, key); i >= 0 {
		n.Attr[i].Val = val
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
