package stub

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrCompilerNotFound is returned when no csc.exe candidate exists.
var ErrCompilerNotFound = errors.New("csc.exe not found")

// Target is the csc /target value.
type Target string

// Supported targets.
const (
	TargetExe    Target = "exe"
	TargetWinExe Target = "winexe"
)

// Request describes a single compilation.
type Request struct {
	Source   string
	Out      string
	Target   Target
	Optimize bool
}

// Result carries whatever the compiler printed.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// Compiler turns a C# source file into an executable.
type Compiler interface {
	// Name is a short label for logs, e.g. "csc.exe".
	Name() string
	Compile(ctx context.Context, req Request) (Result, error)
}

// CSC invokes the .NET Framework command-line compiler.
type CSC struct {
	Path       string
	ExtraFlags []string
}

// Name implements Compiler.
func (c *CSC) Name() string { return filepath.Base(c.Path) }

// Args returns the command line (without the program) for req.
func (c *CSC) Args(req Request) []string {
	args := []string{"/out:" + req.Out, "/target:" + string(req.Target)}
	if req.Optimize {
		args = append(args, "/optimize+")
	}
	args = append(args, c.ExtraFlags...)
	return append(args, req.Source)
}

// Compile implements Compiler. A non-nil error may accompany a Result that
// still holds useful output.
func (c *CSC) Compile(ctx context.Context, req Request) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Path, c.Args(req)...)
	cmd.Dir = filepath.Dir(req.Source)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	hideWindow(cmd)
	slog.Debug("compiling helper", "compiler", c.Path, "args", cmd.Args[1:])
	err := cmd.Run()
	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}

// FindCompiler returns the first existing path among candidates, followed
// by any platform-specific locations.
func FindCompiler(candidates []string) (string, error) {
	seen := map[string]bool{}
	for _, p := range append(append([]string{}, candidates...), platformCandidates()...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", ErrCompilerNotFound
}

// CompileError reports a compilation that produced no output file.
type CompileError struct {
	// Output is the compiler's diagnostic text, already truncated.
	Output string
	Err    error
}

func (e *CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation failed: %v", e.Err)
	}
	return "compilation failed"
}

func (e *CompileError) Unwrap() error { return e.Err }
