package config

import (
	"fmt"
	"strings"
)

// Variant selects which of the two tools is being driven.
type Variant string

const (
	// Launcher generates a separate launcher next to the untouched game exe.
	Launcher Variant = "launcher"
	// Wrapper renames the game exe and installs a same-named wrapper.
	Wrapper Variant = "wrapper"
)

// ParseVariant accepts "launcher" or "wrapper" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case Launcher, Wrapper:
		return v, nil
	case "":
		return Launcher, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want launcher or wrapper)", s)
	}
}

// Title is the display name of the tool for this variant.
func (v Variant) Title() string {
	if v == Wrapper {
		return "VR Wrapper Maker"
	}
	return "VR Launcher Maker"
}
