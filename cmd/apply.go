package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/internal/config"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Install the wrapper in place of the game exe",
	Long: `Rename <Game>.exe to <Game>Real.exe (and <Game>_Data to <Game>Real_Data),
then compile a wrapper named <Game>.exe that starts the real exe with the
forced arguments. Steps already done are skipped, so apply can be re-run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAction(cmd, config.Wrapper, actPrimary)
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the wrapper and restore the original files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAction(cmd, config.Wrapper, actSecondary)
	},
}

func init() {
	addFormFlags(applyCmd, false)
	applyCmd.Flags().Bool("dry-run", false, "print the planned actions without changing anything")
	addFormFlags(undoCmd, false)
	undoCmd.Flags().Bool("dry-run", false, "print the planned actions without changing anything")
	rootCmd.AddCommand(applyCmd, undoCmd)
}
