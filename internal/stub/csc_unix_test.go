//go:build !windows

package stub

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFakeCSC creates a shell script that understands /out:PATH and
// either writes the output or prints a compiler-style error.
func writeFakeCSC(t *testing.T, dir string, fail bool) string {
	t.Helper()
	body := `#!/bin/sh
for a in "$@"; do
  case "$a" in
    /out:*) out="${a#/out:}" ;;
  esac
done
`
	if fail {
		body += "echo \"error CS0117: broken\"\nexit 1\n"
	} else {
		body += "printf 'MZ' > \"$out\"\n"
	}
	p := filepath.Join(dir, "csc.sh")
	if err := os.WriteFile(p, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCSCCompileRunsSubprocess(t *testing.T) {
	dir := t.TempDir()
	c := &CSC{Path: writeFakeCSC(t, dir, false)}
	out := filepath.Join(dir, "Game.exe")
	err := Build(context.Background(), c, BuildRequest{
		Dir: dir, TempName: "_wrapper_temp.cs", Out: out,
		Kind: WrapperKind, Data: Data{TargetExe: "GameReal.exe", Args: "-vrmode openvr"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil || string(b) != "MZ" {
		t.Fatalf("expected compiled output, got %q err=%v", b, err)
	}
}

func TestCSCCompileFailureUsesStdout(t *testing.T) {
	dir := t.TempDir()
	c := &CSC{Path: writeFakeCSC(t, dir, true)}
	err := Build(context.Background(), c, BuildRequest{
		Dir: dir, TempName: "_wrapper_temp.cs", Out: filepath.Join(dir, "Game.exe"),
		Kind: WrapperKind, Data: Data{TargetExe: "GameReal.exe", Args: "-x"}, ErrorLimit: 300,
	})
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError, got %v", err)
	}
	if !strings.Contains(ce.Output, "CS0117") {
		t.Fatalf("expected compiler diagnostics, got %q", ce.Output)
	}
}

func TestCSCMissingBinary(t *testing.T) {
	dir := t.TempDir()
	c := &CSC{Path: filepath.Join(dir, "nope")}
	err := Build(context.Background(), c, BuildRequest{
		Dir: dir, TempName: "_wrapper_temp.cs", Out: filepath.Join(dir, "Game.exe"),
		Kind: WrapperKind, Data: Data{TargetExe: "GameReal.exe", Args: "-x"},
	})
	var ce *CompileError
	if err == nil || errors.As(err, &ce) {
		t.Fatalf("expected a run error, got %v", err)
	}
}
