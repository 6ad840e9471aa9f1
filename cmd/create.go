package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/internal/config"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Compile a launcher next to the game exe",
	Long: `Compile <Game>Launcher.exe next to the game exe, which is left untouched.
The platform launch option to paste is printed on success.

Examples:
  vrforce create --folder "D:\Steam\steamapps\common\Subnautica"
  vrforce create --profile Subnautica --args "-vrmode openvr"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAction(cmd, config.Launcher, actPrimary)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the launcher (the game exe is untouched)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAction(cmd, config.Launcher, actSecondary)
	},
}

func init() {
	addFormFlags(createCmd, true)
	createCmd.Flags().Bool("dry-run", false, "print the planned actions without changing anything")
	addFormFlags(removeCmd, true)
	removeCmd.Flags().Bool("dry-run", false, "print the planned actions without changing anything")
	rootCmd.AddCommand(createCmd, removeCmd)
}
