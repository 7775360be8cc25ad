package render

import (
	"testing"

	"github.com/ziadkadry99/docview/internal/resolve"
	"github.com/ziadkadry99/docview/internal/route"
)

func TestRewriteLinks(t *testing.T) {
	r := resolve.New(testTable())

	tests := []struct {
		name    string
		in      string
		current string
		want    string
	}{
		{
			name:    "sibling",
			in:      `<p><a href="./getting-started.md">x</a></p>`,
			current: "architecture/overview.md",
			want:    `<p><a href="#/architecture/getting-started" data-nav-path="architecture/getting-started.md">x</a></p>`,
		},
		{
			name:    "external",
			in:      `<p><a href="https://example.com/x">x</a></p>`,
			current: "architecture/overview.md",
			want:    `<p><a href="https://example.com/x">x</a></p>`,
		},
		{
			name:    "no href",
			in:      `<a name="top">x</a>`,
			current: "index.md",
			want:    `<a name="top">x</a>`,
		},
		{
			name:    "stale binding replaced",
			in:      `<a href="limitations" data-nav-path="old.md">x</a>`,
			current: "index.md",
			want:    `<a href="#/limitations" data-nav-path="limitations.md">x</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := RewriteLinks(tt.in, route.DocumentPath(tt.current), r)
			if err != nil {
				t.Fatalf("RewriteLinks: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}
