package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeEditor writes an editor script into a temp dir and points $EDITOR at
// it. body is shell on Unix and batch on Windows.
func fakeEditor(t *testing.T, unix, windows string) string {
	t.Helper()
	d := t.TempDir()
	name, body := "editor.sh", "#!/bin/sh\n"+unix+"\n"
	if runtime.GOOS == "windows" {
		name, body = "editor.bat", "@echo off\r\n"+windows+"\r\n"
	}
	p := filepath.Join(d, name)
	if err := os.WriteFile(p, []byte(body), 0o755); err != nil {
		t.Fatalf("write editor: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", p)
	return d
}

func TestOpenEditor(t *testing.T) {
	t.Run("exit zero", func(t *testing.T) {
		d := t.TempDir()
		marker := filepath.Join(d, "edited")
		fakeEditor(t, `printf ok > "`+marker+`"`, `echo ok > "`+marker+`"`)
		if err := OpenEditor(filepath.Join(d, "vr_launcher_profiles.json")); err != nil {
			t.Fatalf("OpenEditor: %v", err)
		}
		b, err := os.ReadFile(marker)
		if err != nil {
			t.Fatalf("editor did not run: %v", err)
		}
		if strings.TrimSpace(string(b)) != "ok" {
			t.Fatalf("marker = %q", b)
		}
	})
	t.Run("exit non-zero", func(t *testing.T) {
		fakeEditor(t, "exit 3", "exit /b 3")
		if err := OpenEditor("vr_launcher_profiles.json"); err == nil {
			t.Fatalf("expected an error from a failing editor")
		}
	})
}

func TestOpenEditor_VisualWithFlags(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor")
	}
	d := fakeEditor(t, "", "")
	marker := filepath.Join(d, "argv")
	script := filepath.Join(d, "code.sh")
	body := "#!/bin/sh\nprintf '%s|%s' \"$1\" \"$2\" > \"" + marker + "\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	t.Setenv("VISUAL", script+" --wait")
	if err := OpenEditor("profiles.json"); err != nil {
		t.Fatalf("OpenEditor: %v", err)
	}
	b, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("editor did not run: %v", err)
	}
	if string(b) != "--wait|profiles.json" {
		t.Fatalf("argv = %q", b)
	}
}
