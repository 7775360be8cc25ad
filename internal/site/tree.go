package site

import (
	"fmt"
	"html/template"
	"path"
	"sort"
	"strings"

	"github.com/ziadkadry99/docview/internal/route"
)

// FileTree represents a node in the sidebar tree.
type FileTree struct {
	Name     string
	Title    string         // Display name.
	Path     string         // For files: document path. For dirs: directory path (e.g., "architecture").
	Key      route.RouteKey // Route key; files only.
	IsDir    bool
	Children []*FileTree
}

// BuildTree constructs a FileTree from the route table entries.
// titles is an optional map of document path -> display title.
func BuildTree(entries []route.Entry, titles map[route.DocumentPath]string) *FileTree {
	root := &FileTree{Name: "docs", IsDir: true}

	for _, e := range entries {
		p := string(e.Path)
		parts := strings.Split(p, "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			var next *FileTree
			for _, child := range current.Children {
				if child.Name == part && child.IsDir == !isLast {
					next = child
					break
				}
			}
			if next == nil {
				next = &FileTree{Name: part, IsDir: !isLast}
				if isLast {
					next.Path = p
					next.Key = e.Key
					next.Title = titles[e.Path]
					if next.Title == "" {
						next.Title = formatDirName(strings.TrimSuffix(part, route.MarkdownExt))
					}
				} else {
					next.Path = strings.Join(parts[:i+1], "/")
					next.Title = formatDirName(part)
				}
				current.Children = append(current.Children, next)
			}
			current = next
		}
	}

	sortTree(root)
	return root
}

// sortTree recursively sorts tree children: files first, then directories, alphabetically.
func sortTree(node *FileTree) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return !node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

// ToHTML renders the tree as nested <ul><li> HTML for the sidebar. Directory
// headers carry data-section and are marked expanded when listed in expanded;
// links carry data-path. The index document is rendered once, as Home.
func (t *FileTree) ToHTML(index route.DocumentPath, expanded []string) template.HTML {
	open := make(map[string]bool, len(expanded))
	for _, s := range expanded {
		open[s] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<ul><li class="file home-link"><a class="nav-link" href="%s" data-path="%s">Home</a></li></ul>`+"\n",
		route.Href(""), template.HTMLEscapeString(string(index)))

	renderChildren(&b, t, index, open)
	return template.HTML(b.String())
}

func renderChildren(b *strings.Builder, node *FileTree, index route.DocumentPath, open map[string]bool) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		if child.IsDir {
			state := ""
			if open[child.Path] {
				state = " expanded"
			}
			section := template.HTMLEscapeString(child.Path)
			fmt.Fprintf(b, `<li class="dir%s" data-section="%s"><span class="dir-toggle" data-section="%s">%s</span>`+"\n",
				state, section, section, template.HTMLEscapeString(child.Title))
			renderChildren(b, child, index, open)
			b.WriteString("</li>\n")
			continue
		}
		if child.Path == string(index) {
			continue
		}
		fmt.Fprintf(b, `<li class="file"><a class="nav-link" href="%s" data-path="%s">%s</a></li>`+"\n",
			template.HTMLEscapeString(route.Href(child.Key)),
			template.HTMLEscapeString(child.Path),
			template.HTMLEscapeString(child.Title))
	}
	b.WriteString("</ul>\n")
}

// formatDirName converts a directory or file slug to a human-readable name.
// Multi-word slugs are title-cased.
func formatDirName(name string) string {
	name = path.Base(name)
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
