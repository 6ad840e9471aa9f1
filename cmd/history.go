package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/internal/db"
	"github.com/VoxDroid/vrforce/internal/history"
	"github.com/VoxDroid/vrforce/internal/utils"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the journal of create/remove/apply/undo runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		r := history.NewRepository(dbConn)
		defer func() { _ = r.Close() }()

		out := cmd.OutOrStdout()
		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes && !utils.Confirm("Clear the whole history?") {
				fmt.Fprintln(out, "aborted")
				return nil
			}
			n, err := r.Clear(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "cleared %d entr(ies)\n", n)
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := r.List(ctx, limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "no history yet")
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tVARIANT\tACTION\tRESULT\tFOLDER\tMESSAGE")
		for _, e := range entries {
			result := "ok"
			if !e.OK {
				result = "failed"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.At.Local().Format(time.DateTime), e.Variant, e.Action, result, e.Folder, e.Message)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "how many entries to show (0 for all)")
	historyCmd.Flags().Bool("clear", false, "delete all history entries")
	historyCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(historyCmd)
}
