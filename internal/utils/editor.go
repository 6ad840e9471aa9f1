package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
)

// OpenEditor opens the given file in the user's preferred editor.
// It respects $VISUAL then $EDITOR, which may carry flags ("code --wait").
// On Windows if neither is set it falls back to notepad; on Unix to vi.
func OpenEditor(path string) error {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		if runtime.GOOS == "windows" {
			editor = "notepad"
		} else {
			editor = "vi"
		}
	}
	argv := []string{editor}
	// an existing file is taken verbatim so Windows paths keep their backslashes
	if _, err := os.Stat(editor); err != nil {
		if split, err := shellquote.Split(editor); err == nil && len(split) > 0 {
			argv = split
		}
	}
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open editor: %w", err)
	}
	return nil
}
