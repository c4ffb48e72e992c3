package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capitalart/ezy/pkg/config"
	"github.com/capitalart/ezy/pkg/selection"
	"github.com/capitalart/ezy/pkg/stack"
)

// stackCmd generates the two stack documents (source stack and root stack)
// from the current selection rules, or lists the selection with --list.
var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Generate markdown stack documents from the source tree",
	Long: `Stack scans the configured source directories and root files, filters
them through the exclusion rules, and writes two timestamped markdown
documents: one for the scanned directories and one for the explicit root
files. With --list the selection is printed and nothing is written.

Toggles may be set via flags or EZY_* environment variables (a .env file in
the working directory is honored); flags win.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		return stack.Run(opts, logger)
	},
}

func init() {
	addSelectionFlags(stackCmd)
	stackCmd.Flags().Bool("list", false, "Print the selection instead of writing documents")
	stackCmd.Flags().StringP("output-dir", "o", "", "Directory for generated documents (default \"stacks\")")

	RootCmd.AddCommand(stackCmd)
}

// addSelectionFlags registers the flags shared by stack and list.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("root", "r", ".", "Repository root to select files from")
	cmd.Flags().Bool("docs", false, "Include documentation files (.md/.txt, docs/, README)")
	cmd.Flags().Bool("tests", false, "Include the tests directory")
	cmd.Flags().Bool("art", false, "Include the art_processing directory")
}

// buildOptions merges the environment configuration with command-line
// flags. Environment toggles are resolved first; any flag the user set
// explicitly overrides the corresponding environment value.
func buildOptions(cmd *cobra.Command) (stack.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return stack.Options{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := stack.Options{
		OutputDir: cfg.OutputDir,
		ListOnly:  cfg.ListOnly,
		Toggles: selection.Toggles{
			IncludeDocs:          cfg.IncludeDocs,
			IncludeTests:         cfg.IncludeTests,
			IncludeArtProcessing: cfg.IncludeArtProcessing,
		},
	}

	flags := cmd.Flags()
	if opts.Root, err = flags.GetString("root"); err != nil {
		return stack.Options{}, fmt.Errorf("error reading flags: %w", err)
	}
	if flags.Changed("docs") {
		opts.Toggles.IncludeDocs, _ = flags.GetBool("docs")
	}
	if flags.Changed("tests") {
		opts.Toggles.IncludeTests, _ = flags.GetBool("tests")
	}
	if flags.Changed("art") {
		opts.Toggles.IncludeArtProcessing, _ = flags.GetBool("art")
	}
	if flags.Changed("list") {
		opts.ListOnly, _ = flags.GetBool("list")
	}
	if flags.Changed("output-dir") {
		if dir, _ := flags.GetString("output-dir"); dir != "" {
			opts.OutputDir = dir
		}
	}
	return opts, nil
}
