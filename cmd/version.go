package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capitalart/ezy/pkg/version"
)

// versionCmd displays the current version of ezy. The --short flag prints
// only the version number.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of ezy",
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Println(v.Version)
		} else {
			fmt.Println(v.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	RootCmd.AddCommand(versionCmd)
}
