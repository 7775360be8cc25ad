package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ziadkadry99/docview/internal/route"
)

// Doc holds metadata about a single Markdown document discovered during
// traversal.
type Doc struct {
	Path    string             // Absolute path on disk.
	RelPath route.DocumentPath // Path relative to the docs root.
	Size    int64              // File size in bytes.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir string   // Docs root to walk.
	Include []string // Glob patterns; only matching files are included.
	Exclude []string // Glob patterns; matching files are excluded.
}

// Walk traverses the docs tree rooted at config.RootDir and returns every
// Markdown document that passes filtering, sorted by relative path. It
// honours a .gitignore at the root.
func Walk(config WalkerConfig) ([]Doc, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("walker: %s is not a directory", root)
	}

	gitignorePatterns := loadGitignore(filepath.Join(root, ".gitignore"))
	filter := Filter{Include: config.Include, Exclude: config.Exclude}

	var docs []Doc

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path != root && ShouldExcludeDir(name) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !strings.HasSuffix(name, route.MarkdownExt) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if matchesGitignore(relPath, gitignorePatterns) {
			return nil
		}
		if !filter.Match(relPath) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		docs = append(docs, Doc{
			Path:    path,
			RelPath: route.DocumentPath(filepath.ToSlash(relPath)),
			Size:    info.Size(),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })
	return docs, nil
}

// Routes derives a route table from discovered documents: each key is the
// path without its extension, and the index document gets the empty key.
func Routes(docs []Doc, index route.DocumentPath) []route.Entry {
	entries := make([]route.Entry, 0, len(docs))
	for _, d := range docs {
		key := route.RouteKey(d.RelPath.TrimExt())
		if d.RelPath == index {
			key = ""
		}
		entries = append(entries, route.Entry{Key: key, Path: d.RelPath})
	}
	// Index first, the rest in path order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key == "" && entries[j].Key != ""
	})
	return entries
}

// loadGitignore reads a .gitignore file and returns its non-empty,
// non-comment lines as patterns.
func loadGitignore(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesGitignore checks if a relative path matches any gitignore pattern.
func matchesGitignore(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		// Handle directory-only patterns (trailing /).
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimSuffix(pattern, "/")

		if !strings.Contains(pattern, "/") {
			// Without a slash the pattern matches any component; a
			// directory-only pattern must not match the file itself.
			parts := strings.Split(normalized, "/")
			for i, part := range parts {
				if dirOnly && i == len(parts)-1 {
					continue
				}
				if matched, _ := filepath.Match(pattern, part); matched {
					return true
				}
			}
		} else if matched, _ := filepath.Match(pattern, normalized); matched {
			return true
		}
	}
	return false
}
