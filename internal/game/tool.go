package game

import (
	"errors"
	"os"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/stub"
)

// Tool runs actions against the filesystem and logs them to Panel.
type Tool struct {
	Panel    *console.Panel
	Settings config.Settings
	// Compiler resolves the compiler lazily so a missing csc only fails the
	// action that needs it, after the cheaper checks.
	Compiler func() (stub.Compiler, error)
}

// New returns a Tool that locates csc.exe from settings.
func New(p *console.Panel, s config.Settings) *Tool {
	return &Tool{
		Panel:    p,
		Settings: s,
		Compiler: func() (stub.Compiler, error) {
			path, err := stub.FindCompiler(s.CompilerPaths)
			if err != nil {
				return nil, err
			}
			return &stub.CSC{Path: path, ExtraFlags: s.ExtraFlags}, nil
		},
	}
}

// fail logs err as an error line and returns it.
func (t *Tool) fail(err error) error {
	t.Panel.Err("%s", err.Error())
	return err
}

func (t *Tool) compiler() (stub.Compiler, error) {
	c, err := t.Compiler()
	if err != nil {
		if errors.Is(err, stub.ErrCompilerNotFound) {
			t.Panel.Err("csc.exe not found! Is .NET Framework 4.x installed?")
			return nil, err
		}
		return nil, t.fail(err)
	}
	t.Panel.OK("Compiler: %s", c.Name())
	return c, nil
}

// reportBuild turns a stub.Build error into panel lines.
func (t *Tool) reportBuild(err error) error {
	var ce *stub.CompileError
	if errors.As(err, &ce) {
		t.Panel.Err("Compilation failed!")
		if ce.Output != "" {
			t.Panel.Warn("%s", ce.Output)
		}
		return err
	}
	t.Panel.Err("Compilation error: %v", err)
	return err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func size(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
