package stub

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRenderLauncherEscapesArgs(t *testing.T) {
	src, err := Render(LauncherKind, Data{TargetExe: "Subnautica.exe", Args: `-vrmode openvr -path "C:\VR"`})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(src, `Path.Combine(dir, "Subnautica.exe")`) {
		t.Fatalf("target exe not substituted:\n%s", src)
	}
	if !strings.Contains(src, `psi.Arguments = "-vrmode openvr -path \"C:\\VR\"";`) {
		t.Fatalf("args not escaped:\n%s", src)
	}
	if !strings.Contains(src, "File.Exists(realExe)") {
		t.Fatalf("launcher should check the game exe exists")
	}
}

func TestRenderWrapper(t *testing.T) {
	src, err := Render(WrapperKind, Data{TargetExe: "GameReal.exe", Args: "-vrmode openvr"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(src, "class VRWrapper") || !strings.Contains(src, `"GameReal.exe"`) {
		t.Fatalf("unexpected wrapper source:\n%s", src)
	}
	if strings.Contains(src, "Console.ReadLine") {
		t.Fatalf("wrapper is a winexe and must not block on the console")
	}
}

func TestRenderUnknownKind(t *testing.T) {
	if _, err := Render(Kind("shim"), Data{}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestCSCArgs(t *testing.T) {
	c := &CSC{Path: `C:\csc.exe`, ExtraFlags: []string{"/nologo"}}
	got := c.Args(Request{Source: "a.cs", Out: "a.exe", Target: TargetExe, Optimize: true})
	want := []string{"/out:a.exe", "/target:exe", "/optimize+", "/nologo", "a.cs"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v want %v", got, want)
	}
	got = (&CSC{}).Args(Request{Source: "w.cs", Out: "w.exe", Target: TargetWinExe})
	want = []string{"/out:w.exe", "/target:winexe", "w.cs"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFindCompiler(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "csc.exe")
	if err := os.WriteFile(present, []byte("x"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := FindCompiler([]string{filepath.Join(dir, "missing.exe"), present})
	if err != nil {
		t.Fatalf("FindCompiler: %v", err)
	}
	if got != present {
		t.Fatalf("expected %s got %s", present, got)
	}
	if runtime.GOOS != "windows" {
		if _, err := FindCompiler([]string{filepath.Join(dir, "missing.exe")}); !errors.Is(err, ErrCompilerNotFound) {
			t.Fatalf("expected ErrCompilerNotFound, got %v", err)
		}
	}
}

// fakeCompiler records the request and optionally writes the output.
type fakeCompiler struct {
	write  bool
	stderr string
	err    error
	got    Request
	source string
}

func (f *fakeCompiler) Name() string { return "fake-csc" }

func (f *fakeCompiler) Compile(_ context.Context, req Request) (Result, error) {
	f.got = req
	b, _ := os.ReadFile(req.Source)
	f.source = string(b)
	if f.write {
		if err := os.WriteFile(req.Out, []byte("MZ"), 0o755); err != nil {
			return Result{}, err
		}
	}
	return Result{Stderr: []byte(f.stderr)}, f.err
}

func TestBuildSuccessRemovesTempSource(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeCompiler{write: true}
	out := filepath.Join(dir, "GameLauncher.exe")
	err := Build(context.Background(), fc, BuildRequest{
		Dir: dir, TempName: "_vrlauncher_temp.cs", Out: out,
		Kind: LauncherKind, Data: Data{TargetExe: "Game.exe", Args: "-vrmode openvr"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "_vrlauncher_temp.cs")); !os.IsNotExist(err) {
		t.Fatalf("temp source should be removed, stat err=%v", err)
	}
	if fc.got.Target != TargetExe || !fc.got.Optimize {
		t.Fatalf("launcher should compile as optimized console exe: %+v", fc.got)
	}
	if !strings.Contains(fc.source, `"Game.exe"`) {
		t.Fatalf("compiler saw unexpected source:\n%s", fc.source)
	}
}

func TestBuildFailureTruncatesOutput(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeCompiler{stderr: strings.Repeat("e", 500)}
	err := Build(context.Background(), fc, BuildRequest{
		Dir: dir, TempName: "_wrapper_temp.cs", Out: filepath.Join(dir, "Game.exe"),
		Kind: WrapperKind, Data: Data{TargetExe: "GameReal.exe", Args: "-x"}, ErrorLimit: 300,
	})
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError, got %v", err)
	}
	if len(ce.Output) != 300 {
		t.Fatalf("expected output truncated to 300, got %d", len(ce.Output))
	}
	if fc.got.Target != TargetWinExe || fc.got.Optimize {
		t.Fatalf("wrapper should compile as winexe: %+v", fc.got)
	}
	if _, err := os.Stat(filepath.Join(dir, "_wrapper_temp.cs")); !os.IsNotExist(err) {
		t.Fatalf("temp source should be removed on failure too")
	}
}

func TestBuildStaleOutputIsNotSuccess(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "GameLauncher.exe")
	if err := os.WriteFile(out, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	fc := &fakeCompiler{stderr: "error CS1002: ; expected", err: errors.New("exit status 1")}
	err := Build(context.Background(), fc, BuildRequest{
		Dir: dir, TempName: "_vrlauncher_temp.cs", Out: out,
		Kind: LauncherKind, Data: Data{TargetExe: "Game.exe", Args: "-x"}, ErrorLimit: 400,
	})
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError for unchanged stale output, got %v", err)
	}
	if ce.Output != "error CS1002: ; expected" {
		t.Fatalf("unexpected output %q", ce.Output)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := Truncate("ééé", 2); got != "éé" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("abc", 0); got != "abc" {
		t.Fatalf("got %q", got)
	}
}
