package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is shared by all subcommands; it is set once by Execute.
var logger = zap.NewNop()

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ezy",
	Short: "ezy builds markdown stacks from the capitalart source tree",
	Long: `ezy collects the repository's source files by rule and concatenates
them into timestamped markdown "stack" documents for review, or lists the
selection without writing anything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given logger and returns the
// command error, leaving exit-code policy to the caller.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	if err := RootCmd.Execute(); err != nil {
		logger.Error("ezy execution failed", zap.Error(err))
		return err
	}
	return nil
}
