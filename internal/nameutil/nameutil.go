// Package nameutil validates and normalises profile names.
package nameutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder is what the profile selector shows when the store is empty.
// It can never be used as a real profile name.
const Placeholder = "(no profiles)"

// ErrEmpty is returned for names that are blank after cleaning.
var ErrEmpty = errors.New("invalid name: name cannot be empty")

// Clean strips control and zero-width characters plus surrounding
// whitespace. The bool reports whether anything was removed.
func Clean(name string) (string, bool) {
	out := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			return -1
		}
		return r
	}, name)
	out = strings.TrimSpace(out)
	return out, out != name
}

// Validate rejects names that cannot key a profile. It does not mutate the
// input; run Clean first when pasting user input.
func Validate(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmpty
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("invalid name: contains invalid encoding")
	}
	if name == Placeholder {
		return fmt.Errorf("invalid name: %q is reserved", Placeholder)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid name: contains control character U+%04X", r)
		}
	}
	return nil
}

// FromFolder suggests a profile name from a game folder: its last element.
// Both slash styles are accepted so Windows paths work on any host.
func FromFolder(folder string) string {
	folder = strings.TrimRight(strings.TrimSpace(folder), `/\`)
	if folder == "" {
		return ""
	}
	if i := strings.LastIndexAny(folder, `/\`); i >= 0 {
		folder = folder[i+1:]
	}
	s, _ := Clean(folder)
	return s
}
