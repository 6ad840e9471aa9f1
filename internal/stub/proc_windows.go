//go:build windows

package stub

import (
	"os/exec"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/windows/registry"
)

func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}

// platformCandidates derives csc.exe locations from the .NET InstallRoot.
func platformCandidates() []string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\.NETFramework`, registry.QUERY_VALUE)
	if err != nil {
		return nil
	}
	defer func() { _ = k.Close() }()
	root, _, err := k.GetStringValue("InstallRoot")
	if err != nil || root == "" {
		return nil
	}
	out := []string{filepath.Join(root, "v4.0.30319", "csc.exe")}
	parent := filepath.Dir(filepath.Clean(root))
	if filepath.Base(filepath.Clean(root)) == "Framework" {
		out = append([]string{filepath.Join(parent, "Framework64", "v4.0.30319", "csc.exe")}, out...)
	}
	return out
}
