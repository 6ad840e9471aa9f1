// Package game performs the launcher and wrapper actions on a game folder,
// reporting every step to a console panel.
package game

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/VoxDroid/vrforce/internal/config"
)

// ErrInput marks a form value problem; the message is user-facing.
var ErrInput = errors.New("invalid input")

type inputError struct{ msg string }

func (e *inputError) Error() string { return e.msg }
func (e *inputError) Is(target error) bool { return target == ErrInput }

func invalid(format string, args ...any) error {
	return &inputError{msg: fmt.Sprintf(format, args...)}
}

// Inputs are the form values an action works on.
type Inputs struct {
	Folder       string
	Exe          string
	LauncherName string
	Args         string
}

// Validate trims the fields and checks them in form order. For the launcher
// variant a missing ".exe" suffix on LauncherName is appended. Args are only
// required when needArgs is set.
func (in *Inputs) Validate(v config.Variant, needArgs bool) error {
	in.Folder = strings.TrimSpace(in.Folder)
	in.Exe = strings.TrimSpace(in.Exe)
	in.LauncherName = strings.TrimSpace(in.LauncherName)
	in.Args = strings.TrimSpace(in.Args)

	if in.Folder == "" {
		return invalid("Game folder not selected!")
	}
	if info, err := os.Stat(in.Folder); err != nil || !info.IsDir() {
		return invalid("Folder not found: %s", in.Folder)
	}
	if in.Exe == "" {
		return invalid("EXE name is empty!")
	}
	if v == config.Launcher {
		if in.LauncherName == "" {
			return invalid("Launcher EXE name is empty!")
		}
		if !strings.HasSuffix(strings.ToLower(in.LauncherName), ".exe") {
			in.LauncherName += ".exe"
		}
	}
	if needArgs && in.Args == "" {
		return invalid("Arguments cannot be empty!")
	}
	return nil
}
