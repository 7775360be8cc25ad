package render

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// Meta is the subset of document frontmatter the viewer uses.
type Meta struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

// SplitFrontmatter separates a leading YAML frontmatter block from the
// Markdown body. Documents without frontmatter, or with frontmatter that does
// not parse, are returned whole with empty Meta.
func SplitFrontmatter(raw []byte) (Meta, []byte) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return Meta{}, raw
	}
	return meta, body
}
