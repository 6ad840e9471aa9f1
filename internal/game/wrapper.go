package game

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/detect"
	"github.com/VoxDroid/vrforce/internal/stub"
)

const wrapperTemp = "_wrapper_temp.cs"

// Layout names the files the wrapper variant moves around. For "Game.exe":
// Game.exe <-> GameReal.exe and Game_Data <-> GameReal_Data.
type Layout struct {
	Base     string
	Orig     string
	Real     string
	OrigData string
	RealData string
}

// RealExe is the file name the original executable is renamed to.
func (l Layout) RealExe() string { return l.Base + "Real.exe" }

// NewLayout computes the staging paths for exe inside folder.
func NewLayout(folder, exe string) Layout {
	base := detect.BaseName(exe)
	return Layout{
		Base:     base,
		Orig:     filepath.Join(folder, exe),
		Real:     filepath.Join(folder, base+"Real.exe"),
		OrigData: filepath.Join(folder, base+"_Data"),
		RealData: filepath.Join(folder, base+"Real_Data"),
	}
}

// ApplyWrapper stages the original exe and data folder under their "Real"
// names and compiles a wrapper in place of the exe. Steps already done by
// an earlier run are skipped, so applying twice is safe.
func (t *Tool) ApplyWrapper(ctx context.Context, in Inputs) error {
	if err := in.Validate(config.Wrapper, true); err != nil {
		return t.fail(err)
	}
	l := NewLayout(in.Folder, in.Exe)

	t.Panel.Section("Applying Wrapper")
	if !exists(l.Real) {
		if !exists(l.Orig) {
			t.Panel.Err("EXE not found: %s", in.Exe)
			return fmt.Errorf("exe not found: %s", l.Orig)
		}
		if err := os.Rename(l.Orig, l.Real); err != nil {
			t.Panel.Err("Rename failed: %v", err)
			return fmt.Errorf("stage exe: %w", err)
		}
		t.Panel.OK("%s → %s", in.Exe, l.RealExe())
	} else {
		t.Panel.Dim("%s already exists, skipped", l.RealExe())
	}

	if exists(l.OrigData) && !exists(l.RealData) {
		if err := os.Rename(l.OrigData, l.RealData); err != nil {
			t.Panel.Err("Rename failed: %v", err)
			return fmt.Errorf("stage data folder: %w", err)
		}
		t.Panel.OK("%s_Data → %sReal_Data", l.Base, l.Base)
	} else if exists(l.RealData) {
		t.Panel.Dim("%sReal_Data already exists, skipped", l.Base)
	}

	c, err := t.compiler()
	if err != nil {
		return err
	}

	t.Panel.Dim("Compiling...")
	err = stub.Build(ctx, c, stub.BuildRequest{
		Dir:        in.Folder,
		TempName:   wrapperTemp,
		Out:        l.Orig,
		Kind:       stub.WrapperKind,
		Data:       stub.Data{TargetExe: l.RealExe(), Args: in.Args},
		ErrorLimit: t.Settings.ErrorLimit[config.Wrapper],
	})
	if err != nil {
		return t.reportBuild(err)
	}
	t.Panel.OK("Wrapper EXE created: %s", in.Exe)
	t.Panel.OK("Done! You can now launch normally from Steam.")
	return nil
}

// UndoWrapper deletes the wrapper and moves the originals back. When there
// is nothing staged it only warns, so undoing twice is safe.
func (t *Tool) UndoWrapper(in Inputs) error {
	if err := in.Validate(config.Wrapper, false); err != nil {
		return t.fail(err)
	}
	l := NewLayout(in.Folder, in.Exe)

	t.Panel.Section("Undoing Wrapper")
	if !exists(l.Real) {
		t.Panel.Warn("Real EXE not found — wrapper already removed?")
		return nil
	}
	if exists(l.Orig) {
		if err := os.Remove(l.Orig); err != nil {
			t.Panel.Err("Delete failed: %v", err)
			return fmt.Errorf("remove wrapper: %w", err)
		}
		t.Panel.OK("Wrapper deleted: %s", in.Exe)
	}
	if err := os.Rename(l.Real, l.Orig); err != nil {
		t.Panel.Err("Rename failed: %v", err)
		return fmt.Errorf("restore exe: %w", err)
	}
	t.Panel.OK("%s → %s", l.RealExe(), in.Exe)
	if exists(l.RealData) && !exists(l.OrigData) {
		if err := os.Rename(l.RealData, l.OrigData); err != nil {
			t.Panel.Err("Rename failed: %v", err)
			return fmt.Errorf("restore data folder: %w", err)
		}
		t.Panel.OK("%sReal_Data → %s_Data", l.Base, l.Base)
	}
	t.Panel.OK("Undo complete.")
	return nil
}

// WrapperStatus describes a folder from the wrapper's point of view.
type WrapperStatus struct {
	RealExe      bool
	RealData     bool
	ExePresent   bool
	ExeSize      int64
	WrapperAlive bool
}

// WrapperStatus inspects the staged files. An exe smaller than
// Settings.WrapperMaxSize is taken to be the wrapper.
func (t *Tool) WrapperStatus(in Inputs) (WrapperStatus, error) {
	if err := in.Validate(config.Wrapper, false); err != nil {
		return WrapperStatus{}, t.fail(err)
	}
	l := NewLayout(in.Folder, in.Exe)

	t.Panel.Section("Status Check")
	var st WrapperStatus
	if st.RealExe = exists(l.Real); st.RealExe {
		t.Panel.OK("Real EXE found: %s", l.RealExe())
	} else {
		t.Panel.Warn("Real EXE not found — wrapper not applied")
	}
	if st.RealData = exists(l.RealData); st.RealData {
		t.Panel.OK("Real Data folder found")
	} else {
		t.Panel.Warn("Real Data folder missing")
	}
	if exists(l.Orig) {
		st.ExePresent = true
		st.ExeSize = size(l.Orig)
		if st.ExeSize < t.Settings.WrapperMaxSize {
			st.WrapperAlive = true
			t.Panel.OK("Wrapper is active (%d KB — small = wrapper)", st.ExeSize/1024)
		} else {
			t.Panel.Dim("Wrapper not applied (%d KB — original)", st.ExeSize/1024)
		}
	}
	return st, nil
}

// PlanApplyWrapper lists what ApplyWrapper would do.
func PlanApplyWrapper(in Inputs, compilerPath string) ([]string, error) {
	if err := in.Validate(config.Wrapper, true); err != nil {
		return nil, err
	}
	l := NewLayout(in.Folder, in.Exe)
	var actions []string
	switch {
	case exists(l.Real):
		actions = append(actions, "Skip: already staged: "+l.Real)
	case exists(l.Orig):
		actions = append(actions, fmt.Sprintf("Rename %s -> %s", l.Orig, l.Real))
	default:
		return nil, fmt.Errorf("exe not found: %s", l.Orig)
	}
	switch {
	case exists(l.OrigData) && !exists(l.RealData):
		actions = append(actions, fmt.Sprintf("Rename %s -> %s", l.OrigData, l.RealData))
	case exists(l.RealData):
		actions = append(actions, "Skip: data folder already staged: "+l.RealData)
	}
	return append(actions,
		fmt.Sprintf("Write temporary source: %s", filepath.Join(in.Folder, wrapperTemp)),
		fmt.Sprintf("Compile with %s -> %s (forwards to %s)", compilerPath, l.Orig, l.RealExe()),
		fmt.Sprintf("Remove temporary source: %s", wrapperTemp),
	), nil
}

// PlanUndoWrapper lists what UndoWrapper would do.
func PlanUndoWrapper(in Inputs) ([]string, error) {
	if err := in.Validate(config.Wrapper, false); err != nil {
		return nil, err
	}
	l := NewLayout(in.Folder, in.Exe)
	if !exists(l.Real) {
		return []string{"No-op: nothing staged at " + l.Real}, nil
	}
	var actions []string
	if exists(l.Orig) {
		actions = append(actions, "Remove wrapper: "+l.Orig)
	}
	actions = append(actions, fmt.Sprintf("Rename %s -> %s", l.Real, l.Orig))
	if exists(l.RealData) && !exists(l.OrigData) {
		actions = append(actions, fmt.Sprintf("Rename %s -> %s", l.RealData, l.OrigData))
	}
	return actions, nil
}
