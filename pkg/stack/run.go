// Package stack turns a selection into markdown stack documents, or reports
// it without writing anything.
package stack

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/capitalart/ezy/pkg/selection"
)

// Options configures one run of the stack pipeline.
type Options struct {
	Root      string            // Repository root to select from
	OutputDir string            // Directory for generated documents
	Toggles   selection.Toggles // Resolved before the engine runs
	ListOnly  bool              // Report the selection instead of writing
}

// Run executes the full pipeline: resolve the rule, run the engine twice
// (once for the source directories, once for the explicit root files), then
// either report the selections or write the two stack documents.
//
// In write mode a run that matched nothing at all returns
// *EmptySelectionError; in list mode the same situation is a success.
func Run(opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	logger.Info("Starting stack run",
		zap.String("root", opts.Root),
		zap.Bool("listOnly", opts.ListOnly))

	rule := selection.BuildRule(opts.Toggles)

	sourceResult, err := selection.Select(opts.Root, rule.SourceOnly(), logger)
	if err != nil {
		return fmt.Errorf("source selection failed: %w", err)
	}
	rootResult, err := selection.Select(opts.Root, rule.RootOnly(), logger)
	if err != nil {
		return fmt.Errorf("root-file selection failed: %w", err)
	}

	if opts.ListOnly {
		Report(os.Stdout, "Source files", sourceResult)
		Report(os.Stdout, "Root files", rootResult)
		return nil
	}

	if sourceResult.Empty() && rootResult.Empty() {
		return &EmptySelectionError{Root: opts.Root}
	}

	stamp := start.Format("20060102_150405")
	writer := NewWriter(opts.Root, logger)

	if err := writer.Write(Document{
		Title: "Source Stack",
		Path:  filepath.Join(opts.OutputDir, fmt.Sprintf("source_stack_%s.md", stamp)),
		Files: sourceResult.DirFiles,
	}); err != nil {
		return fmt.Errorf("failed to write source stack: %w", err)
	}

	if err := writer.Write(Document{
		Title: "Root Stack",
		Path:  filepath.Join(opts.OutputDir, fmt.Sprintf("root_stack_%s.md", stamp)),
		Files: rootResult.RootFiles,
	}); err != nil {
		return fmt.Errorf("failed to write root stack: %w", err)
	}

	logger.Info("Stack run completed",
		zap.Int("sourceFiles", len(sourceResult.DirFiles)),
		zap.Int("rootFiles", len(rootResult.RootFiles)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
