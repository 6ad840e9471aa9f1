package adapters

import (
	"context"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/detect"
	"github.com/VoxDroid/vrforce/internal/game"
)

// ActionAdapterImpl runs game.Tool actions for one variant.
type ActionAdapterImpl struct {
	tool    *game.Tool
	variant config.Variant
}

// NewActionAdapter returns an adapter for variant backed by tool.
func NewActionAdapter(tool *game.Tool, variant config.Variant) *ActionAdapterImpl {
	return &ActionAdapterImpl{tool: tool, variant: variant}
}

// Variant reports which helper this adapter builds.
func (a *ActionAdapterImpl) Variant() config.Variant { return a.variant }

// Detect picks the largest non-helper exe in folder.
func (a *ActionAdapterImpl) Detect(_ context.Context, folder string) (Detection, error) {
	exe, err := detect.Executable(folder, a.tool.Settings.Skip)
	if err != nil {
		return Detection{}, err
	}
	d := Detection{Exe: exe}
	if a.variant == config.Launcher {
		d.LauncherName = detect.LauncherName(exe)
	}
	return d, nil
}

// Primary creates the launcher or applies the wrapper.
func (a *ActionAdapterImpl) Primary(ctx context.Context, f Form) (ActionResult, error) {
	in := toInputs(f)
	if a.variant == config.Wrapper {
		return ActionResult{}, a.tool.ApplyWrapper(ctx, in)
	}
	res, err := a.tool.CreateLauncher(ctx, in)
	if err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Hint: res.Hint}, nil
}

// Secondary removes the launcher or undoes the wrapper.
func (a *ActionAdapterImpl) Secondary(_ context.Context, f Form) error {
	if a.variant == config.Wrapper {
		return a.tool.UndoWrapper(toInputs(f))
	}
	return a.tool.RemoveLauncher(toInputs(f))
}

// Status logs the variant's status report.
func (a *ActionAdapterImpl) Status(_ context.Context, f Form) error {
	var err error
	if a.variant == config.Wrapper {
		_, err = a.tool.WrapperStatus(toInputs(f))
	} else {
		_, err = a.tool.LauncherStatus(toInputs(f))
	}
	return err
}

func toInputs(f Form) game.Inputs {
	return game.Inputs{Folder: f.Folder, Exe: f.Exe, LauncherName: f.LauncherName, Args: f.Args}
}
