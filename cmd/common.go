package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/db"
	"github.com/VoxDroid/vrforce/internal/detect"
	"github.com/VoxDroid/vrforce/internal/game"
	"github.com/VoxDroid/vrforce/internal/history"
	"github.com/VoxDroid/vrforce/internal/profile"
	"github.com/VoxDroid/vrforce/internal/tui/adapters"
	modelpkg "github.com/VoxDroid/vrforce/internal/tui/model"
)

// app bundles what every command needs for one variant.
type app struct {
	variant  config.Variant
	settings config.Settings
	panel    *console.Panel
	store    *profile.Store
	tool     *game.Tool
	journal  *history.Repository
}

// newApp loads settings and the variant's profile store. When force is
// non-empty it overrides --variant.
func newApp(cmd *cobra.Command, force config.Variant) (*app, error) {
	v := force
	if v == "" {
		var err error
		if v, err = config.ParseVariant(variantFlag); err != nil {
			return nil, err
		}
	}
	s, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	panel := console.NewPanel(console.NewColorSink(cmd.OutOrStdout()))

	path, err := config.ProfilesPath(v)
	if err != nil {
		return nil, err
	}
	store, err := profile.Open(path)
	if err != nil {
		if !errors.Is(err, profile.ErrCorrupt) {
			return nil, err
		}
		// keep going with an empty store; the next save replaces the file
		panel.Warn("Profiles file unreadable, starting empty: %v", err)
	}
	return &app{variant: v, settings: s, panel: panel, store: store, tool: game.New(panel, s)}, nil
}

// openJournal opens the history DB. The journal is optional: failures are
// logged and the command carries on without it.
func (a *app) openJournal() {
	conn, err := db.InitDB()
	if err != nil {
		slog.Warn("history unavailable", "err", err)
		return
	}
	a.journal = history.NewRepository(conn)
}

func (a *app) close() {
	if a.journal != nil {
		_ = a.journal.Close()
	}
}

// uiModel wires the framework-agnostic model the TUI also uses, so the
// command line gets the same auto-save and journaling.
func (a *app) uiModel() *modelpkg.UIModel {
	var h adapters.HistoryAdapter
	if a.journal != nil {
		h = adapters.NewHistoryAdapter(a.journal, a.variant)
	}
	return modelpkg.New(
		adapters.NewProfileAdapter(a.store),
		adapters.NewActionAdapter(a.tool, a.variant),
		h,
		adapters.NewImportExportAdapter(a.store),
		a.panel,
	)
}

// addFormFlags registers the form fields as flags.
func addFormFlags(c *cobra.Command, withLauncher bool) {
	c.Flags().String("profile", "", "start from a saved profile (default: the last-active one)")
	c.Flags().String("folder", "", "game folder")
	c.Flags().String("exe", "", "game executable name (auto-detected when omitted)")
	if withLauncher {
		c.Flags().String("launcher", "", "launcher executable name (default: <Game>Launcher.exe)")
	}
	c.Flags().String("args", "", "forced launch arguments (default from settings)")
}

// formFromFlags builds the form: the named (or last-active) profile first,
// then any flags given on top. A missing exe is auto-detected.
func (a *app) formFromFlags(ctx context.Context, c *cobra.Command) (adapters.Form, error) {
	var f adapters.Form
	name, _ := c.Flags().GetString("profile")
	folder, _ := c.Flags().GetString("folder")
	if name == "" && folder == "" {
		name = a.store.Last()
	}
	if name != "" {
		p, ok := a.store.Get(name)
		if !ok {
			return f, fmt.Errorf("%w: %q", profile.ErrNotFound, name)
		}
		f = adapters.Form{Folder: p.Folder, Exe: p.Exe, LauncherName: p.LauncherName, Args: p.Args}
		slog.Debug("using profile", "name", name)
	}
	for flag, dst := range map[string]*string{
		"folder":   &f.Folder,
		"exe":      &f.Exe,
		"launcher": &f.LauncherName,
		"args":     &f.Args,
	} {
		if c.Flags().Lookup(flag) == nil || !c.Flags().Changed(flag) {
			continue
		}
		*dst, _ = c.Flags().GetString(flag)
	}
	if strings.TrimSpace(f.Args) == "" {
		f.Args = a.settings.Args
	}
	if strings.TrimSpace(f.Folder) != "" && strings.TrimSpace(f.Exe) == "" {
		d, err := adapters.NewActionAdapter(a.tool, a.variant).Detect(ctx, f.Folder)
		if err == nil {
			f.Exe = d.Exe
			a.panel.Dim("Auto-detected: %s", d.Exe)
			if f.LauncherName == "" {
				f.LauncherName = d.LauncherName
			}
		}
	}
	if a.variant == config.Launcher && f.LauncherName == "" && f.Exe != "" {
		f.LauncherName = detect.LauncherName(f.Exe)
	}
	return f, nil
}

func toInputs(f adapters.Form) game.Inputs {
	return game.Inputs{Folder: f.Folder, Exe: f.Exe, LauncherName: f.LauncherName, Args: f.Args}
}
