// Package sanitize cleans text captured from child processes, mainly
// compiler diagnostics, before it is drawn in the TUI log view. Entries are
// coloured by level, so any escape sequences in the captured text are
// removed rather than passed through.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	oscRe = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
	csiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
)

// TabWidth is how many spaces a tab expands to.
const TabWidth = 4

// Text normalizes line endings to LF, strips OSC and CSI sequences, expands
// tabs and drops any remaining control characters.
func Text(in string) string {
	out := strings.ReplaceAll(in, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\r", "\n")
	out = oscRe.ReplaceAllString(out, "")
	out = csiRe.ReplaceAllString(out, "")
	out = strings.ReplaceAll(out, "\t", strings.Repeat(" ", TabWidth))
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, out)
}
