package cmd

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the helper is installed in a game folder",
	Long:  "Report the launcher (default) or, with --variant wrapper, the wrapper state of a game folder.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAction(cmd, "", actStatus)
	},
}

func init() {
	addFormFlags(statusCmd, true)
	rootCmd.AddCommand(statusCmd)
}
