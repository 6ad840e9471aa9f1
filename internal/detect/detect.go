// Package detect guesses which executable in a game folder is the game.
package detect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoExecutable is returned when a folder holds no candidate .exe.
var ErrNoExecutable = errors.New("no game executable found")

// Candidate is a top-level .exe that survived the skip filter.
type Candidate struct {
	Name string
	Size int64
}

// Candidates lists the folder's top-level .exe files whose lower-cased
// name contains none of the skip fragments, largest first. Equal sizes are
// ordered by name, descending.
func Candidates(dir string, skip []string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var out []Candidate
	for _, e := range entries {
		name := e.Name()
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".exe") || skipped(lower, skip) {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.IsDir() {
			continue
		}
		out = append(out, Candidate{Name: name, Size: info.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size > out[j].Size
		}
		return out[i].Name > out[j].Name
	})
	return out, nil
}

// Executable returns the best guess for the game's main executable.
func Executable(dir string, skip []string) (string, error) {
	c, err := Candidates(dir, skip)
	if err != nil {
		return "", err
	}
	if len(c) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoExecutable, dir)
	}
	return c[0].Name, nil
}

func skipped(lowerName string, skip []string) bool {
	for _, s := range skip {
		if s != "" && strings.Contains(lowerName, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// BaseName strips the extension from an exe name ("Game.exe" -> "Game").
func BaseName(exe string) string {
	return strings.TrimSuffix(exe, filepath.Ext(exe))
}

// LauncherName is the default launcher file name for a game exe.
func LauncherName(exe string) string {
	return BaseName(exe) + "Launcher.exe"
}
