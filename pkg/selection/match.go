package selection

import (
	"path"
	"strings"
)

// The predicates below are pure: they look only at the slash-separated
// relative path they are given and never touch the filesystem.

// ExtensionAllowed reports whether the file's extension is in the allow set.
// Files without an extension are never allowed by the extension filter.
func (r Rule) ExtensionAllowed(relPath string) bool {
	ext := path.Ext(relPath)
	if ext == "" {
		return false
	}
	return r.Extensions[ext]
}

// PathExcluded reports whether any exclusion rule vetoes the candidate.
// Exclusions are hard vetoes: a path rejected here is never admitted by
// any include rule.
func (r Rule) PathExcluded(relPath string) bool {
	segments := strings.Split(relPath, "/")
	for _, seg := range segments {
		if r.ExcludedFragments[seg] {
			return true
		}
		if r.ExcludeHidden && strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return matchesAnyPattern(segments[len(segments)-1], r.ExcludedNamePatterns)
}

// matchesAnyPattern matches the filename against each glob pattern using
// path.Match semantics: '*' does not cross '/', and it does match a leading
// dot, so "*.bak" excludes ".hidden.bak" as well. Malformed patterns never
// match.
func matchesAnyPattern(name string, patterns []string) bool {
	for _, p := range patterns {
		ok, err := path.Match(p, name)
		if err == nil && ok {
			return true
		}
	}
	return false
}
