package cmd

import (
	"github.com/spf13/cobra"

	"github.com/capitalart/ezy/pkg/stack"
)

// listCmd prints the current selection without writing anything. It is the
// dry-run surface for checking the rule configuration before generating
// large documents; an empty selection is reported as "0 files" and succeeds.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the files the current rules would select",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		opts.ListOnly = true
		return stack.Run(opts, logger)
	},
}

func init() {
	addSelectionFlags(listCmd)
	RootCmd.AddCommand(listCmd)
}
