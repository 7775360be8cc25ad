package walker

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory names never descended into.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	"vendor",
	".docview",
	"_site",
	".idea",
	".vscode",
}

// ShouldExcludeDir reports whether a directory name is one of
// DefaultExcludes. Used during traversal to skip entire subtrees.
func ShouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// Filter selects documents by doublestar glob. An empty Include admits
// everything; Exclude wins over Include.
type Filter struct {
	Include []string
	Exclude []string
}

// Match reports whether the slash-separated relative path passes the filter.
func (f Filter) Match(relPath string) bool {
	return MatchesInclude(relPath, f.Include) && !MatchesExclude(relPath, f.Exclude)
}

// MatchesInclude returns true if relPath matches any of the include
// patterns, or if there are none.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if relPath matches any of the exclude
// patterns.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny tries each pattern against the full path, then against the
// base name so that "README.md" excludes every README.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := path.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
