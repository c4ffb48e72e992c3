package selection

// Rule is the fully resolved selection configuration. It is built once from
// the toggle flags and never mutated afterwards; the engine only reads it.
type Rule struct {
	Dirs                 []string        // Directories to scan, in output order
	RootFiles            []string        // Explicit files directly under the root, in output order
	Extensions           map[string]bool // Allowed file extensions, including the leading dot
	ExcludedFragments    map[string]bool // Path segments that veto a candidate anywhere in its path
	ExcludeHidden        bool            // Veto any path with a segment starting with '.'
	ExcludedNamePatterns []string        // Glob patterns matched against the final path segment only
}

// Toggles expands or restricts the default rule set. Each toggle only adds
// entries; disabling one never removes a file another toggle admitted.
type Toggles struct {
	IncludeDocs          bool // Adds docs directory, documentation root files and .md/.txt
	IncludeTests         bool // Adds the tests directory
	IncludeArtProcessing bool // Adds the art_processing pipeline directory
}

// Default rule material, mirroring the capitalart repository layout.
var (
	defaultDirs       = []string{"routes", "services", "utils", "static", "templates", "scripts"}
	defaultRootFiles  = []string{"app.py", "config.py", "requirements.txt", ".env.example"}
	defaultExtensions = []string{".py", ".js", ".css", ".html", ".json", ".sh", ".ini", ".toml", ".yml", ".yaml"}

	docDirs       = []string{"docs"}
	docRootFiles  = []string{"README.md", "CHANGELOG.md"}
	docExtensions = []string{".md", ".txt"}

	defaultExcludedFragments = []string{
		"venv", "__pycache__", "node_modules", "build", "dist",
		"logs", "backups", "old", "archive",
	}
	defaultNamePatterns = []string{"*-bk.*", "*.bak", "*~", "*.log"}
)

// BuildRule resolves the toggle flags into an immutable Rule. The engine
// itself is toggle-agnostic; all toggle handling ends here.
func BuildRule(t Toggles) Rule {
	dirs := append([]string{}, defaultDirs...)
	rootFiles := append([]string{}, defaultRootFiles...)
	extensions := append([]string{}, defaultExtensions...)

	if t.IncludeArtProcessing {
		dirs = append(dirs, "art_processing")
	}
	if t.IncludeTests {
		dirs = append(dirs, "tests")
	}
	if t.IncludeDocs {
		dirs = append(dirs, docDirs...)
		rootFiles = append(rootFiles, docRootFiles...)
		extensions = append(extensions, docExtensions...)
	}

	return Rule{
		Dirs:                 dirs,
		RootFiles:            rootFiles,
		Extensions:           toSet(extensions),
		ExcludedFragments:    toSet(defaultExcludedFragments),
		ExcludeHidden:        true,
		ExcludedNamePatterns: append([]string{}, defaultNamePatterns...),
	}
}

// SourceOnly returns a copy of the rule with the explicit root files
// removed, for the directory-scan invocation of the engine.
func (r Rule) SourceOnly() Rule {
	r.RootFiles = nil
	return r
}

// RootOnly returns a copy of the rule with the scanned directories removed,
// for the root-files invocation of the engine.
func (r Rule) RootOnly() Rule {
	r.Dirs = nil
	return r
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
