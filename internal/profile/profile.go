// Package profile persists named game profiles in a flat JSON document,
// one document per tool variant.
package profile

import (
	"strings"
)

// Profile is a saved set of form values for one game.
type Profile struct {
	Folder string `json:"folder" yaml:"folder"`
	Exe    string `json:"exe" yaml:"exe"`
	// LauncherName is only used by the launcher variant.
	LauncherName string `json:"launcher_name,omitempty" yaml:"launcher_name,omitempty"`
	Args         string `json:"args" yaml:"args"`
}

// Trimmed returns p with surrounding whitespace removed from every field.
func (p Profile) Trimmed() Profile {
	return Profile{
		Folder:       strings.TrimSpace(p.Folder),
		Exe:          strings.TrimSpace(p.Exe),
		LauncherName: strings.TrimSpace(p.LauncherName),
		Args:         strings.TrimSpace(p.Args),
	}
}

// Document is the on-disk shape.
type Document struct {
	Profiles    map[string]Profile `json:"profiles"`
	LastProfile string             `json:"last_profile"`
}

func emptyDocument() Document {
	return Document{Profiles: map[string]Profile{}}
}
