//go:build !windows

package stub

import "os/exec"

func hideWindow(*exec.Cmd) {}

func platformCandidates() []string { return nil }
