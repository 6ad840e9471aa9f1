package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/game"
)

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Print the platform launch option for a launcher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd, config.Launcher)
		if err != nil {
			return err
		}
		// keep stdout to the hint alone
		a.panel = console.NewPanel()
		a.tool.Panel = a.panel
		f, err := a.formFromFlags(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		if f.Folder == "" || f.LauncherName == "" {
			return fmt.Errorf("folder and launcher name are required")
		}
		fmt.Fprintln(cmd.OutOrStdout(), game.SteamHint(f.Folder, f.LauncherName))
		return nil
	},
}

func init() {
	addFormFlags(hintCmd, true)
	rootCmd.AddCommand(hintCmd)
}
