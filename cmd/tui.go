package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/cmd/tui/ui"
	"github.com/VoxDroid/vrforce/internal/console"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI",
	Long:  "Start the interactive terminal UI for the variant selected with --variant.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		a.openJournal()
		defer a.close()

		// the alt screen owns the terminal; the panel feeds the log view only
		panel := console.NewPanel()
		for _, e := range a.panel.Entries() {
			panel.Log(e.Level, e.Msg)
		}
		a.panel = panel
		a.tool.Panel = panel

		// stderr sits under the alt screen; journal warnings would garble it
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		defer slog.SetDefault(prev)

		uiModel := a.uiModel()
		panel.Dim("Welcome! Select a profile or configure a new game.")
		p := ui.NewProgram(uiModel)
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
