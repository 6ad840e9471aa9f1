// Package model provides a framework-agnostic UI model built on top of
// adapter interfaces so the TUI code can remain presentation-focused.
package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/detect"
	"github.com/VoxDroid/vrforce/internal/game"
	"github.com/VoxDroid/vrforce/internal/nameutil"
	"github.com/VoxDroid/vrforce/internal/tui/adapters"
)

// ErrNotFound is returned when the selected profile does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoHint is returned by CopyHint before a launch option is known.
var ErrNoHint = errors.New("no launch option yet")

// HintPlaceholder is shown until a launch option is known.
const HintPlaceholder = "← Apply launcher first to see the Steam launch option"

// UIModel is a framework-agnostic model for the form, the profile selector
// and the actions. It depends only on adapter interfaces.
type UIModel struct {
	profiles adapters.ProfileAdapter
	actions  adapters.ActionAdapter
	history  adapters.HistoryAdapter
	impExp   adapters.ImportExportAdapter
	panel    *console.Panel

	form     adapters.Form
	names    []string
	selected string
	hint     string

	// serialize actions so two key presses cannot stage the same folder twice
	runMu sync.Mutex
	now   func() time.Time
}

// New constructs a UIModel backed by the provided adapters. history and ie
// may be nil.
func New(p adapters.ProfileAdapter, a adapters.ActionAdapter, h adapters.HistoryAdapter, ie adapters.ImportExportAdapter, panel *console.Panel) *UIModel {
	m := &UIModel{profiles: p, actions: a, history: h, impExp: ie, panel: panel, now: time.Now}
	m.form.Args = config.DefaultArgs
	return m
}

// Variant reports which helper the model builds.
func (m *UIModel) Variant() config.Variant { return m.actions.Variant() }

// Panel returns the log panel actions write to.
func (m *UIModel) Panel() *console.Panel { return m.panel }

// Form returns the current form values.
func (m *UIModel) Form() adapters.Form { return m.form }

// SetForm replaces the form values.
func (m *UIModel) SetForm(f adapters.Form) {
	m.form = f
	m.updateHint()
}

// Hint returns the launch option for the launcher variant, or the
// placeholder until one is known. It is empty for the wrapper variant.
func (m *UIModel) Hint() string {
	if m.Variant() != config.Launcher {
		return ""
	}
	if m.hint == "" {
		return HintPlaceholder
	}
	return m.hint
}

// CopyHint hands the launch option to write, typically a clipboard.
func (m *UIModel) CopyHint(write func(string) error) error {
	if m.Variant() != config.Launcher || m.hint == "" {
		return ErrNoHint
	}
	if err := write(m.hint); err != nil {
		m.panel.Err("Copy failed: %v", err)
		return err
	}
	m.panel.OK("Steam launch option copied to clipboard!")
	return nil
}

func (m *UIModel) updateHint() {
	folder := strings.TrimSpace(m.form.Folder)
	launcher := strings.TrimSpace(m.form.LauncherName)
	if m.Variant() == config.Launcher && folder != "" && launcher != "" {
		m.hint = game.SteamHint(folder, launcher)
	}
}

// RefreshProfiles reloads the profile names and picks the selection: the
// last-active profile when valid, otherwise the first name.
func (m *UIModel) RefreshProfiles(ctx context.Context) error {
	names, err := m.profiles.ListProfiles(ctx)
	if err != nil {
		return err
	}
	m.names = names
	last, err := m.profiles.LastProfile(ctx)
	if err != nil {
		return err
	}
	switch {
	case len(names) == 0:
		m.selected = nameutil.Placeholder
	case contains(names, last):
		m.selected = last
	case !contains(names, m.selected):
		m.selected = names[0]
	}
	return nil
}

// Profiles returns the selector entries; the placeholder when empty.
func (m *UIModel) Profiles() []string {
	if len(m.names) == 0 {
		return []string{nameutil.Placeholder}
	}
	return append([]string(nil), m.names...)
}

// Selected returns the selector value.
func (m *UIModel) Selected() string { return m.selected }

// Select changes the selector value without loading it.
func (m *UIModel) Select(name string) { m.selected = name }

// SuggestName proposes a profile name from the folder.
func (m *UIModel) SuggestName() string { return nameutil.FromFolder(m.form.Folder) }

// Browse sets the folder and auto-detects the game exe in it.
func (m *UIModel) Browse(ctx context.Context, folder string) error {
	m.form.Folder = strings.TrimSpace(folder)
	d, err := m.actions.Detect(ctx, m.form.Folder)
	if err != nil {
		if errors.Is(err, detect.ErrNoExecutable) {
			m.panel.Dim("No game EXE auto-detected, enter it manually")
			return nil
		}
		return err
	}
	m.form.Exe = d.Exe
	m.panel.Dim("Auto-detected: %s", d.Exe)
	if d.LauncherName != "" {
		m.form.LauncherName = d.LauncherName
		m.panel.Dim("Launcher will be: %s", d.LauncherName)
	}
	return nil
}

// LoadLast applies the last-active profile at startup, if any.
func (m *UIModel) LoadLast(ctx context.Context) error {
	if err := m.RefreshProfiles(ctx); err != nil {
		return err
	}
	last, err := m.profiles.LastProfile(ctx)
	if err != nil || last == "" {
		return err
	}
	p, err := m.profiles.GetProfile(ctx, last)
	if err != nil {
		return nil
	}
	m.apply(p)
	m.panel.Accent("Auto-loaded profile: %s", last)
	return nil
}

// LoadProfile fills the form from name and marks it last-active.
func (m *UIModel) LoadProfile(ctx context.Context, name string) error {
	p, err := m.profiles.GetProfile(ctx, name)
	if err != nil {
		m.panel.Warn("No valid profile selected.")
		return ErrNotFound
	}
	m.apply(p)
	if err := m.profiles.SetLastProfile(ctx, name); err != nil {
		return err
	}
	m.selected = name
	m.panel.Accent("Profile loaded: %s", name)
	return nil
}

func (m *UIModel) apply(p adapters.ProfileSummary) {
	m.form = p.Form
	if m.form.Args == "" {
		m.form.Args = config.DefaultArgs
	}
	m.updateHint()
}

// SaveProfile validates the form and saves it under name, overwriting any
// profile of that name.
func (m *UIModel) SaveProfile(ctx context.Context, name string) error {
	in, err := m.validated(true)
	if err != nil {
		return err
	}
	name, _ = nameutil.Clean(name)
	if err := nameutil.Validate(name); err != nil {
		m.panel.Warn("%v", err)
		return err
	}
	if err := m.profiles.SaveProfile(ctx, adapters.ProfileSummary{Name: name, Form: in}); err != nil {
		return m.failf("Save failed: %v", err)
	}
	if err := m.profiles.SetLastProfile(ctx, name); err != nil {
		return err
	}
	m.selected = name
	if err := m.RefreshProfiles(ctx); err != nil {
		return err
	}
	m.panel.Accent("Profile saved: '%s'", name)
	return nil
}

// DeleteProfile removes name. Confirmation is the caller's job.
func (m *UIModel) DeleteProfile(ctx context.Context, name string) error {
	if name == nameutil.Placeholder || name == "" {
		m.panel.Warn("No valid profile selected.")
		return ErrNotFound
	}
	if err := m.profiles.DeleteProfile(ctx, name); err != nil {
		if errors.Is(err, adapters.ErrNotFound) {
			m.panel.Warn("No valid profile selected.")
			return ErrNotFound
		}
		return m.failf("Delete failed: %v", err)
	}
	if m.selected == name {
		m.selected = ""
	}
	if err := m.RefreshProfiles(ctx); err != nil {
		return err
	}
	m.panel.Warn("Profile deleted: '%s'", name)
	return nil
}

// Primary creates the launcher or applies the wrapper, then auto-saves a
// profile named after the folder.
func (m *UIModel) Primary(ctx context.Context) error {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	in, err := m.validated(true)
	if err != nil {
		return err
	}
	start := m.now()
	res, err := m.actions.Primary(ctx, in)
	m.record(ctx, m.primaryName(), in, start, err)
	if err != nil {
		return err
	}
	if res.Hint != "" {
		m.hint = res.Hint
	}
	m.autoSave(ctx, in)
	return nil
}

// Secondary removes the launcher or undoes the wrapper.
func (m *UIModel) Secondary(ctx context.Context) error {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	in, err := m.validated(false)
	if err != nil {
		return err
	}
	start := m.now()
	err = m.actions.Secondary(ctx, in)
	m.record(ctx, m.secondaryName(), in, start, err)
	if err != nil {
		return err
	}
	if m.Variant() == config.Launcher {
		m.hint = ""
	}
	return nil
}

// Status logs the status report for the current form.
func (m *UIModel) Status(ctx context.Context) error {
	in, err := m.validated(false)
	if err != nil {
		return err
	}
	return m.actions.Status(ctx, in)
}

// Close writes the form back into the last-active profile, without
// validating it, the way closing the window does.
func (m *UIModel) Close(ctx context.Context) error {
	last, err := m.profiles.LastProfile(ctx)
	if err != nil || last == "" {
		return err
	}
	f := trimmed(m.form)
	if m.Variant() != config.Launcher {
		f.LauncherName = ""
	}
	return m.profiles.SaveProfile(ctx, adapters.ProfileSummary{Name: last, Form: f})
}

// Export writes profiles to dest as YAML.
func (m *UIModel) Export(ctx context.Context, dest string, names ...string) error {
	if m.impExp == nil {
		return fmt.Errorf("import/export adapter not configured")
	}
	if err := m.impExp.Export(ctx, dest, names...); err != nil {
		return m.failf("Export failed: %v", err)
	}
	m.panel.OK("Profiles exported: %s", dest)
	return nil
}

// Import reads profiles from a YAML bundle at src.
func (m *UIModel) Import(ctx context.Context, src string, overwrite bool) error {
	if m.impExp == nil {
		return fmt.Errorf("import/export adapter not configured")
	}
	imported, skipped, err := m.impExp.Import(ctx, src, overwrite)
	if err != nil {
		return m.failf("Import failed: %v", err)
	}
	m.panel.OK("Imported %d profile(s)", len(imported))
	for _, s := range skipped {
		m.panel.Dim("Skipped existing profile: %s", s)
	}
	return m.RefreshProfiles(ctx)
}

// History returns recent journal events, newest first.
func (m *UIModel) History(ctx context.Context, limit int) ([]adapters.Event, error) {
	if m.history == nil {
		return nil, nil
	}
	return m.history.Recent(ctx, limit)
}

// validated normalizes the form the way the action will and reports the
// first problem to the panel.
func (m *UIModel) validated(needArgs bool) (adapters.Form, error) {
	in := game.Inputs{Folder: m.form.Folder, Exe: m.form.Exe, LauncherName: m.form.LauncherName, Args: m.form.Args}
	err := in.Validate(m.Variant(), needArgs)
	// keep the trimmed values and the appended ".exe" visible in the form
	m.form = adapters.Form{Folder: in.Folder, Exe: in.Exe, LauncherName: in.LauncherName, Args: in.Args}
	if err != nil {
		m.panel.Err("%v", err)
		return adapters.Form{}, err
	}
	f := m.form
	if m.Variant() != config.Launcher {
		f.LauncherName = ""
	}
	return f, nil
}

func (m *UIModel) autoSave(ctx context.Context, in adapters.Form) {
	name := nameutil.FromFolder(in.Folder)
	if nameutil.Validate(name) != nil {
		return
	}
	p := adapters.ProfileSummary{Name: name, Form: in}
	if m.Variant() == config.Launcher {
		if err := m.profiles.SaveProfile(ctx, p); err != nil {
			m.panel.Warn("Profile auto-save failed: %v", err)
			return
		}
	} else {
		wrote, err := m.profiles.SaveProfileIfAbsent(ctx, p)
		if err != nil {
			m.panel.Warn("Profile auto-save failed: %v", err)
			return
		}
		if !wrote {
			return
		}
	}
	if err := m.profiles.SetLastProfile(ctx, name); err != nil {
		m.panel.Warn("Profile auto-save failed: %v", err)
		return
	}
	m.selected = name
	_ = m.RefreshProfiles(ctx)
	m.panel.Accent("Profile auto-saved: '%s'", name)
}

func (m *UIModel) record(ctx context.Context, action string, in adapters.Form, start time.Time, err error) {
	if m.history == nil {
		return
	}
	e := adapters.Event{
		Action:   action,
		Profile:  nameutil.FromFolder(in.Folder),
		Folder:   in.Folder,
		Exe:      in.Exe,
		OK:       err == nil,
		Duration: m.now().Sub(start),
		At:       start,
	}
	if err != nil {
		e.Message = err.Error()
	}
	if rerr := m.history.Record(ctx, e); rerr != nil {
		slog.Warn("history record failed", "action", action, "err", rerr)
	}
}

func (m *UIModel) primaryName() string {
	if m.Variant() == config.Wrapper {
		return "apply"
	}
	return "create"
}

func (m *UIModel) secondaryName() string {
	if m.Variant() == config.Wrapper {
		return "undo"
	}
	return "remove"
}

func (m *UIModel) failf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	m.panel.Err("%v", err)
	return err
}

func trimmed(f adapters.Form) adapters.Form {
	return adapters.Form{
		Folder:       strings.TrimSpace(f.Folder),
		Exe:          strings.TrimSpace(f.Exe),
		LauncherName: strings.TrimSpace(f.LauncherName),
		Args:         strings.TrimSpace(f.Args),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
