package selection

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Result is the ordered outcome of a single selection run. Paths are
// slash-separated and relative to the selection root.
type Result struct {
	DirFiles  []string // Files found under scanned directories, directory order then lexicographic
	RootFiles []string // Explicit root files that exist, in configured order
}

// Empty reports whether the run matched nothing at all.
func (r Result) Empty() bool {
	return len(r.DirFiles) == 0 && len(r.RootFiles) == 0
}

// Total returns the number of selected files across both partitions.
func (r Result) Total() int {
	return len(r.DirFiles) + len(r.RootFiles)
}

// Select evaluates the rule against the tree rooted at root and returns the
// matching files. The only fatal condition is a root that does not exist or
// is not a directory; a configured directory or root file that is missing is
// skipped silently, and an empty Result is a valid outcome, not an error.
//
// The run is a read-only snapshot: Select never opens file contents and
// never writes, so concurrent runs against the same root are safe.
func Select(root string, rule Rule, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(root)
	if err != nil {
		return Result{}, &ConfigurationError{Root: root, Reason: "path does not exist"}
	}
	if !info.IsDir() {
		return Result{}, &ConfigurationError{Root: root, Reason: "path is not a directory"}
	}

	var result Result
	for _, dir := range rule.Dirs {
		files := scanDirectory(root, dir, rule, logger)
		sort.Strings(files)
		result.DirFiles = append(result.DirFiles, files...)
	}

	for _, name := range rule.RootFiles {
		fi, err := os.Stat(filepath.Join(root, name))
		if err != nil || !fi.Mode().IsRegular() {
			logger.Debug("Skipping missing root file", zap.String("file", name))
			continue
		}
		result.RootFiles = append(result.RootFiles, name)
	}

	logger.Debug("Selection complete",
		zap.String("root", root),
		zap.Int("dirFiles", len(result.DirFiles)),
		zap.Int("rootFiles", len(result.RootFiles)))
	return result, nil
}

// scanDirectory collects every regular file under one configured directory
// that passes the allow and veto filters. A missing directory yields nil.
// Per-entry traversal errors are logged and skipped; the candidate set was
// enumerated against a live tree and may legitimately shift under us.
func scanDirectory(root, dir string, rule Rule, logger *zap.Logger) []string {
	dirPath := filepath.Join(root, dir)
	fi, err := os.Stat(dirPath)
	if err != nil || !fi.IsDir() {
		logger.Debug("Skipping missing directory", zap.String("directory", dir))
		return nil
	}

	var files []string
	walkErr := filepath.WalkDir(dirPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during scan", zap.String("path", p), zap.Error(err))
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			logger.Warn("Failed to compute relative path", zap.String("path", p), zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if p != dirPath && rule.segmentVetoed(d.Name()) {
				logger.Debug("Pruning excluded directory", zap.String("directory", rel))
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !rule.ExtensionAllowed(rel) || rule.PathExcluded(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if walkErr != nil {
		logger.Warn("Directory scan ended early", zap.String("directory", dir), zap.Error(walkErr))
	}
	return files
}

// segmentVetoed reports whether a single path segment disqualifies the
// subtree below it. Filename patterns are not consulted here; they apply to
// files only.
func (r Rule) segmentVetoed(segment string) bool {
	if r.ExcludedFragments[segment] {
		return true
	}
	return r.ExcludeHidden && strings.HasPrefix(segment, ".")
}
