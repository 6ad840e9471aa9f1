package stub

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BuildRequest describes one helper to generate.
type BuildRequest struct {
	// Dir is where the temporary source is written (the game folder).
	Dir string
	// TempName is the temporary source file name, e.g. "_wrapper_temp.cs".
	TempName string
	// Out is the full path of the executable to produce.
	Out  string
	Kind Kind
	Data Data
	// ErrorLimit caps CompileError.Output in characters; 0 means no cap.
	ErrorLimit int
}

// Build renders, writes, compiles and cleans up. It succeeds only when the
// output file exists afterwards (and, if it already existed, was rewritten
// or the compiler exited cleanly). The temporary source is always removed.
func Build(ctx context.Context, c Compiler, req BuildRequest) (err error) {
	src, err := Render(req.Kind, req.Data)
	if err != nil {
		return err
	}
	srcPath := filepath.Join(req.Dir, req.TempName)
	if err := os.WriteFile(srcPath, []byte(src), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", req.TempName, err)
	}
	defer func() {
		if rerr := os.Remove(srcPath); rerr != nil && !errors.Is(rerr, os.ErrNotExist) && err == nil {
			err = fmt.Errorf("remove %s: %w", req.TempName, rerr)
		}
	}()

	before, existed := stat(req.Out)
	res, runErr := c.Compile(ctx, Request{
		Source:   srcPath,
		Out:      req.Out,
		Target:   targetFor(req.Kind),
		Optimize: req.Kind == LauncherKind,
	})
	after, exists := stat(req.Out)
	if exists && (runErr == nil || !existed || after.changedSince(before)) {
		return nil
	}
	if runErr != nil && !isExitError(runErr) && len(res.Stderr) == 0 && len(res.Stdout) == 0 {
		// the compiler never ran (bad path, permission, cancelled context)
		return fmt.Errorf("run %s: %w", c.Name(), runErr)
	}
	return &CompileError{Output: Truncate(diagnostics(res), req.ErrorLimit), Err: runErr}
}

func targetFor(k Kind) Target {
	if k == WrapperKind {
		return TargetWinExe
	}
	return TargetExe
}

// diagnostics prefers stderr; csc writes its errors to stdout, so fall back.
func diagnostics(r Result) string {
	if s := strings.TrimSpace(string(r.Stderr)); s != "" {
		return s
	}
	return strings.TrimSpace(string(r.Stdout))
}

// Truncate keeps at most limit runes of s.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

type fileStamp struct {
	size int64
	mod  time.Time
}

func (f fileStamp) changedSince(o fileStamp) bool {
	return f.size != o.size || !f.mod.Equal(o.mod)
}

func stat(path string) (fileStamp, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fileStamp{}, false
	}
	return fileStamp{size: info.Size(), mod: info.ModTime()}, true
}

func isExitError(err error) bool {
	var ee *exec.ExitError
	return errors.As(err, &ee)
}
