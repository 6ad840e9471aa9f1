package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/detect"
)

var detectCmd = &cobra.Command{
	Use:   "detect <folder>",
	Short: "Show which exe would be picked as the game in a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cands, err := detect.Candidates(args[0], s.Skip)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(cands) == 0 {
			return fmt.Errorf("%w in %s", detect.ErrNoExecutable, args[0])
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "EXE\tSIZE")
		for _, c := range cands {
			fmt.Fprintf(w, "%s\t%d KB\n", c.Name, c.Size/1024)
		}
		_ = w.Flush()
		game := cands[0].Name
		fmt.Fprintf(out, "\nGame exe:      %s\n", game)
		fmt.Fprintf(out, "Launcher name: %s\n", detect.LauncherName(game))
		fmt.Fprintf(out, "Wrapper moves: %s -> %sReal.exe\n", game, detect.BaseName(game))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
