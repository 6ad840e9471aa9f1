package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/internal/nameutil"
	"github.com/VoxDroid/vrforce/internal/profile"
	"github.com/VoxDroid/vrforce/internal/utils"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved game profiles",
	Long:  "Manage the saved profiles of the variant selected with --variant.",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles (* marks the last-active one)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		names := a.store.Names()
		if len(names) == 0 {
			fmt.Fprintln(out, nameutil.Placeholder)
			return nil
		}
		last := a.store.Last()
		for _, n := range names {
			mark := " "
			if n == last {
				mark = "*"
			}
			p, _ := a.store.Get(n)
			fmt.Fprintf(out, "%s %s\t%s\n", mark, n, p.Folder)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a profile as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		return a.store.Export(cmd.OutOrStdout(), args[0])
	},
}

var profileSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save the given form values as a profile",
	Long: `Save the form values as a profile. Without a name the profile name is
prompted for, suggesting the game folder's base name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		f, err := a.formFromFlags(ctx, cmd)
		if err != nil {
			return err
		}
		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = utils.Prompt("Profile name", nameutil.FromFolder(f.Folder))
			if errors.Is(err, utils.ErrCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}
		}
		m := a.uiModel()
		m.SetForm(f)
		return reported(m.SaveProfile(ctx, name))
	},
}

var profileLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Mark a profile as last-active and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		m := a.uiModel()
		if err := m.LoadProfile(ctx, args[0]); err != nil {
			return reported(err)
		}
		f := m.Form()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "folder:   %s\nexe:      %s\n", f.Folder, f.Exe)
		if f.LauncherName != "" {
			fmt.Fprintf(out, "launcher: %s\n", f.LauncherName)
		}
		fmt.Fprintf(out, "args:     %s\n", f.Args)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		name := args[0]
		if yes, _ := cmd.Flags().GetBool("yes"); !yes && a.store.Has(name) {
			if !utils.Confirm(fmt.Sprintf("Delete '%s'?", name)) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
		}
		return reported(a.uiModel().DeleteProfile(cmd.Context(), name))
	},
}

var profileExportCmd = &cobra.Command{
	Use:   "export [name...]",
	Short: "Export profiles as YAML (all when no name is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		dest, _ := cmd.Flags().GetString("out")
		if dest == "" {
			return a.store.Export(cmd.OutOrStdout(), args...)
		}
		return reported(a.uiModel().Export(cmd.Context(), dest, args...))
	},
}

var profileImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import profiles from a YAML bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		return reported(a.uiModel().Import(cmd.Context(), args[0], overwrite))
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the profiles file in $EDITOR and validate it afterwards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd, "")
		if err != nil {
			return err
		}
		path := a.store.Path()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := a.store.Save(); err != nil {
				return err
			}
		}
		if err := utils.OpenEditor(path); err != nil {
			return err
		}
		s, err := profile.Open(path)
		if err != nil {
			return fmt.Errorf("edited file is invalid, it will be replaced on the next save: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d profile(s) OK\n", s.Len())
		return nil
	},
}

func init() {
	addFormFlags(profileSaveCmd, true)
	profileDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	profileExportCmd.Flags().StringP("out", "o", "", "write to this file instead of stdout")
	profileImportCmd.Flags().Bool("overwrite", false, "replace profiles that already exist")

	profileCmd.AddCommand(profileListCmd, profileShowCmd, profileSaveCmd, profileLoadCmd,
		profileDeleteCmd, profileExportCmd, profileImportCmd, profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}
