package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/game"
	"github.com/VoxDroid/vrforce/internal/stub"
	"github.com/VoxDroid/vrforce/internal/tui/adapters"
)

// actionKind selects which game action a command runs.
type actionKind int

const (
	actPrimary actionKind = iota
	actSecondary
	actStatus
)

// runAction drives one action through the UI model so auto-save and the
// journal behave as in the TUI.
func runAction(c *cobra.Command, v config.Variant, kind actionKind) error {
	ctx := c.Context()
	a, err := newApp(c, v)
	if err != nil {
		return err
	}
	defer a.close()

	f, err := a.formFromFlags(ctx, c)
	if err != nil {
		return err
	}
	if dry, _ := c.Flags().GetBool("dry-run"); dry {
		return printPlan(c, a, kind, f)
	}

	if kind != actStatus {
		a.openJournal()
	}
	m := a.uiModel()
	if err := m.RefreshProfiles(ctx); err != nil {
		return err
	}
	m.SetForm(f)
	switch kind {
	case actPrimary:
		err = m.Primary(ctx)
	case actSecondary:
		err = m.Secondary(ctx)
	default:
		err = m.Status(ctx)
	}
	return reported(err)
}

func printPlan(c *cobra.Command, a *app, kind actionKind, f adapters.Form) error {
	compiler := "csc.exe (not found)"
	if p, err := stub.FindCompiler(a.settings.CompilerPaths); err == nil {
		compiler = p
	}
	in := toInputs(f)
	var (
		actions []string
		err     error
	)
	switch {
	case a.variant == config.Launcher && kind == actPrimary:
		actions, err = game.PlanLauncher(in, compiler)
	case a.variant == config.Launcher:
		actions, err = game.PlanRemoveLauncher(in)
	case kind == actPrimary:
		actions, err = game.PlanApplyWrapper(in, compiler)
	default:
		actions, err = game.PlanUndoWrapper(in)
	}
	if err != nil {
		return err
	}
	out := c.OutOrStdout()
	fmt.Fprintln(out, "Planned actions (dry-run):")
	for _, s := range actions {
		fmt.Fprintf(out, "  - %s\n", s)
	}
	return nil
}
