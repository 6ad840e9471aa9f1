package ui

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/tui/adapters"
	modelpkg "github.com/VoxDroid/vrforce/internal/tui/model"
)

type fakeProfiles struct {
	items map[string]adapters.Form
	last  string
}

func (f *fakeProfiles) ListProfiles(_ context.Context) ([]string, error) {
	var out []string
	for k := range f.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}
func (f *fakeProfiles) GetProfile(_ context.Context, name string) (adapters.ProfileSummary, error) {
	v, ok := f.items[name]
	if !ok {
		return adapters.ProfileSummary{}, adapters.ErrNotFound
	}
	return adapters.ProfileSummary{Name: name, Form: v}, nil
}
func (f *fakeProfiles) SaveProfile(_ context.Context, p adapters.ProfileSummary) error {
	f.items[p.Name] = p.Form
	return nil
}
func (f *fakeProfiles) SaveProfileIfAbsent(ctx context.Context, p adapters.ProfileSummary) (bool, error) {
	if _, ok := f.items[p.Name]; ok {
		return false, nil
	}
	return true, f.SaveProfile(ctx, p)
}
func (f *fakeProfiles) DeleteProfile(_ context.Context, name string) error {
	if _, ok := f.items[name]; !ok {
		return adapters.ErrNotFound
	}
	delete(f.items, name)
	return nil
}
func (f *fakeProfiles) LastProfile(_ context.Context) (string, error) {
	if _, ok := f.items[f.last]; ok {
		return f.last, nil
	}
	return "", nil
}
func (f *fakeProfiles) SetLastProfile(_ context.Context, name string) error {
	f.last = name
	return nil
}

type fakeActions struct {
	panel   *console.Panel
	primary int
}

func (f *fakeActions) Variant() config.Variant { return config.Launcher }
func (f *fakeActions) Detect(_ context.Context, _ string) (adapters.Detection, error) {
	return adapters.Detection{Exe: "Game.exe", LauncherName: "GameLauncher.exe"}, nil
}
func (f *fakeActions) Primary(_ context.Context, in adapters.Form) (adapters.ActionResult, error) {
	f.primary++
	f.panel.OK("Launcher created: %s (1 KB)", in.LauncherName)
	return adapters.ActionResult{Hint: `"` + filepath.Join(in.Folder, in.LauncherName) + `" %command%`}, nil
}
func (f *fakeActions) Secondary(_ context.Context, _ adapters.Form) error { return nil }
func (f *fakeActions) Status(_ context.Context, _ adapters.Form) error    { return nil }

func newTestTui(t *testing.T) (*TuiModel, *fakeProfiles, *fakeActions) {
	t.Helper()
	panel := console.NewPanel()
	profiles := &fakeProfiles{items: map[string]adapters.Form{
		"Alpha": {Folder: t.TempDir(), Exe: "Alpha.exe", LauncherName: "AlphaLauncher.exe", Args: "-vrmode openvr"},
	}, last: "Alpha"}
	actions := &fakeActions{panel: panel}
	ui := modelpkg.New(profiles, actions, nil, nil, panel)
	m := NewModel(ui)
	m.clipboard = func(string) error { return nil }
	// run the load half of Init without the log listener
	m1, _ := m.Update(m.loadCmd()())
	return m1.(*TuiModel), profiles, actions
}

// drive feeds a key and executes any returned action command.
func drive(t *testing.T, m *TuiModel, k tea.KeyMsg) *TuiModel {
	t.Helper()
	m1, cmd := m.Update(k)
	m = m1.(*TuiModel)
	if cmd == nil {
		return m
	}
	if msg, ok := cmd().(actionDoneMsg); ok {
		m1, _ = m.Update(msg)
		m = m1.(*TuiModel)
	}
	return m
}

func TestInitLoadsLastProfile(t *testing.T) {
	m, _, _ := newTestTui(t)
	if got := m.inputs[1].input.Value(); got != "Alpha.exe" {
		t.Fatalf("exe input not filled: %q", got)
	}
	if m.selectedName() != "Alpha" {
		t.Fatalf("expected Alpha selected, got %q", m.selectedName())
	}
	if !strings.Contains(m.View(), "VR LAUNCHER MAKER") {
		t.Fatalf("missing header")
	}
	if !strings.Contains(m.View(), "Auto-loaded profile: Alpha") {
		t.Fatalf("log not rendered:\n%s", m.View())
	}
}

func TestPrimaryKeyRunsActionAndUpdatesHint(t *testing.T) {
	m, profiles, actions := newTestTui(t)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if actions.primary != 1 {
		t.Fatalf("primary not run")
	}
	if m.busy {
		t.Fatalf("busy flag should clear after the action")
	}
	if !strings.HasSuffix(m.hint, `AlphaLauncher.exe" %command%`) {
		t.Fatalf("hint not updated: %q", m.hint)
	}
	if len(profiles.items) != 2 {
		t.Fatalf("expected auto-saved profile named after the folder, got %v", profiles.items)
	}
}

func TestSavePromptUsesSuggestion(t *testing.T) {
	m, profiles, _ := newTestTui(t)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.prompt != promptSave {
		t.Fatalf("save prompt not opened")
	}
	suggest := m.promptInput.Value()
	if suggest == "" {
		t.Fatalf("expected a suggested name")
	}
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt != promptNone {
		t.Fatalf("prompt should close")
	}
	if _, ok := profiles.items[suggest]; !ok {
		t.Fatalf("profile %q not saved: %v", suggest, profiles.items)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, profiles, _ := newTestTui(t)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if m.prompt != promptDelete {
		t.Fatalf("delete should ask first")
	}
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if _, ok := profiles.items["Alpha"]; !ok {
		t.Fatalf("answering no must keep the profile")
	}
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if _, ok := profiles.items["Alpha"]; ok {
		t.Fatalf("profile should be deleted")
	}
	if m.selectedName() != "(no profiles)" {
		t.Fatalf("expected placeholder entry, got %q", m.selectedName())
	}
}

func TestTabCyclesFocusAndTypingEditsInput(t *testing.T) {
	m, _, _ := newTestTui(t)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 || !m.inputs[0].input.Focused() {
		t.Fatalf("tab should focus the folder input")
	}
	m.inputs[0].input.SetValue("")
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/g")})
	if got := m.inputs[0].input.Value(); got != "/g" {
		t.Fatalf("typed value %q", got)
	}
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != 0 {
		t.Fatalf("shift+tab should return to the list")
	}
}

func TestDetectKeyFillsInputs(t *testing.T) {
	m, _, _ := newTestTui(t)
	m.inputs[1].input.SetValue("")
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if got := m.inputs[1].input.Value(); got != "Game.exe" {
		t.Fatalf("exe not detected: %q", got)
	}
	if got := m.inputs[2].input.Value(); got != "GameLauncher.exe" {
		t.Fatalf("launcher not derived: %q", got)
	}
}

func TestEscQuitsAndWritesBack(t *testing.T) {
	m, profiles, _ := newTestTui(t)
	m.inputs[3].input.SetValue("-vrmode oculus")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if profiles.items["Alpha"].Args != "-vrmode oculus" {
		t.Fatalf("form should be written back on quit: %+v", profiles.items["Alpha"])
	}
}

func TestCtrlCWaitsForRunningAction(t *testing.T) {
	m, profiles, _ := newTestTui(t)
	m.inputs[3].input.SetValue("-vrmode oculus")
	m1, run := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = m1.(*TuiModel)
	if run == nil || !m.busy {
		t.Fatalf("expected the primary action to be running")
	}

	m1, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = m1.(*TuiModel)
	if cmd != nil {
		t.Fatalf("ctrl+c must not quit while an action runs")
	}
	if profiles.items["Alpha"].Args != "-vrmode openvr" {
		t.Fatalf("form written back before the action finished: %+v", profiles.items["Alpha"])
	}

	_, cmd = m.Update(run())
	if cmd == nil {
		t.Fatalf("expected quit once the action finished")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	// the auto-save made the folder's profile last-active
	if got := profiles.items[profiles.last].Args; got != "-vrmode oculus" {
		t.Fatalf("form should be written back on quit, got args %q", got)
	}
}

func TestInitLocksFormUntilLoaded(t *testing.T) {
	panel := console.NewPanel()
	profiles := &fakeProfiles{items: map[string]adapters.Form{}}
	m := NewModel(modelpkg.New(profiles, &fakeActions{panel: panel}, nil, nil, panel))
	_ = m.Init()
	if !m.busy {
		t.Fatalf("form should be locked while the last profile loads")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR}); cmd != nil {
		t.Fatalf("actions must be ignored before the load finishes")
	}
	m1, _ := m.Update(initDoneMsg{})
	if m1.(*TuiModel).busy {
		t.Fatalf("form should unlock after the load")
	}
}

func TestRenderEntryWraps(t *testing.T) {
	e := console.Entry{Level: console.Warn, Msg: strings.Repeat("word ", 20)}
	out := renderEntry(e, 40)
	if strings.Count(out, "\n") < 2 {
		t.Fatalf("expected wrapped output, got %q", out)
	}
}
