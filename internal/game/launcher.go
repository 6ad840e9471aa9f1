package game

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/stub"
)

const launcherTemp = "_vrlauncher_temp.cs"

// SteamHint is the launch option that routes the platform through the
// launcher: the quoted launcher path followed by %command%.
func SteamHint(folder, launcherName string) string {
	return `"` + filepath.Join(folder, launcherName) + `" %command%`
}

// LauncherResult is returned by a successful CreateLauncher.
type LauncherResult struct {
	Path string
	Size int64
	Hint string
}

// CreateLauncher compiles a launcher next to the game exe. The game exe is
// never renamed.
func (t *Tool) CreateLauncher(ctx context.Context, in Inputs) (LauncherResult, error) {
	if err := in.Validate(config.Launcher, true); err != nil {
		return LauncherResult{}, t.fail(err)
	}
	gamePath := filepath.Join(in.Folder, in.Exe)
	launcherPath := filepath.Join(in.Folder, in.LauncherName)

	t.Panel.Section("Creating Launcher")
	if !exists(gamePath) {
		t.Panel.Err("Game EXE not found: %s", in.Exe)
		return LauncherResult{}, fmt.Errorf("game exe not found: %s", gamePath)
	}
	t.Panel.OK("Game EXE found: %s (will NOT be renamed)", in.Exe)

	c, err := t.compiler()
	if err != nil {
		return LauncherResult{}, err
	}

	t.Panel.Dim("Compiling %s...", in.LauncherName)
	err = stub.Build(ctx, c, stub.BuildRequest{
		Dir:        in.Folder,
		TempName:   launcherTemp,
		Out:        launcherPath,
		Kind:       stub.LauncherKind,
		Data:       stub.Data{TargetExe: in.Exe, Args: in.Args},
		ErrorLimit: t.Settings.ErrorLimit[config.Launcher],
	})
	if err != nil {
		return LauncherResult{}, t.reportBuild(err)
	}

	res := LauncherResult{Path: launcherPath, Size: size(launcherPath), Hint: SteamHint(in.Folder, in.LauncherName)}
	t.Panel.OK("Launcher created: %s (%d KB)", in.LauncherName, res.Size/1024)
	t.Panel.Section("Steam Launch Options")
	t.Panel.Warn("  %s", res.Hint)
	t.Panel.OK("Paste the above into Steam → Right-click game → Properties → Launch Options")
	return res, nil
}

// RemoveLauncher deletes the launcher. A missing launcher is only a warning.
func (t *Tool) RemoveLauncher(in Inputs) error {
	if err := in.Validate(config.Launcher, false); err != nil {
		return t.fail(err)
	}
	launcherPath := filepath.Join(in.Folder, in.LauncherName)

	t.Panel.Section("Removing Launcher")
	if !exists(launcherPath) {
		t.Panel.Warn("Launcher not found: %s", in.LauncherName)
		return nil
	}
	if err := os.Remove(launcherPath); err != nil {
		t.Panel.Err("Delete failed: %v", err)
		return fmt.Errorf("remove launcher: %w", err)
	}
	t.Panel.OK("Deleted: %s", in.LauncherName)
	t.Panel.OK("Game EXE is untouched.")
	return nil
}

// LauncherStatus describes a folder from the launcher's point of view.
type LauncherStatus struct {
	LauncherPresent bool
	LauncherSize    int64
	GamePresent     bool
	Hint            string
}

// LauncherStatus reports whether the launcher and the game exe are present.
func (t *Tool) LauncherStatus(in Inputs) (LauncherStatus, error) {
	if err := in.Validate(config.Launcher, false); err != nil {
		return LauncherStatus{}, t.fail(err)
	}
	launcherPath := filepath.Join(in.Folder, in.LauncherName)
	gamePath := filepath.Join(in.Folder, in.Exe)

	t.Panel.Section("Status Check")
	var st LauncherStatus
	if exists(launcherPath) {
		st.LauncherPresent = true
		st.LauncherSize = size(launcherPath)
		st.Hint = SteamHint(in.Folder, in.LauncherName)
		t.Panel.OK("Launcher active: %s (%d KB)", in.LauncherName, st.LauncherSize/1024)
	} else {
		t.Panel.Warn("Launcher not found: %s", in.LauncherName)
	}
	if exists(gamePath) {
		st.GamePresent = true
		t.Panel.OK("Game EXE intact: %s", in.Exe)
	} else {
		t.Panel.Err("Game EXE missing: %s", in.Exe)
	}
	if st.Hint != "" {
		t.Panel.Dim("Steam option: %s", st.Hint)
	}
	return st, nil
}

// PlanLauncher lists what CreateLauncher would do, without side effects.
func PlanLauncher(in Inputs, compilerPath string) ([]string, error) {
	if err := in.Validate(config.Launcher, true); err != nil {
		return nil, err
	}
	launcherPath := filepath.Join(in.Folder, in.LauncherName)
	actions := []string{
		fmt.Sprintf("Check game exe exists: %s", filepath.Join(in.Folder, in.Exe)),
		fmt.Sprintf("Write temporary source: %s", filepath.Join(in.Folder, launcherTemp)),
		fmt.Sprintf("Compile with %s -> %s", compilerPath, launcherPath),
		fmt.Sprintf("Remove temporary source: %s", launcherTemp),
	}
	if exists(launcherPath) {
		actions = append(actions, fmt.Sprintf("Overwrite existing launcher: %s", in.LauncherName))
	}
	return append(actions, "Launch option: "+SteamHint(in.Folder, in.LauncherName)), nil
}

// PlanRemoveLauncher lists what RemoveLauncher would do.
func PlanRemoveLauncher(in Inputs) ([]string, error) {
	if err := in.Validate(config.Launcher, false); err != nil {
		return nil, err
	}
	p := filepath.Join(in.Folder, in.LauncherName)
	if !exists(p) {
		return []string{"No-op: launcher not found: " + p}, nil
	}
	return []string{"Remove launcher: " + p}, nil
}
