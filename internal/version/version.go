// Package version provides version information.
package version

// Version is set at build time via -ldflags "-X github.com/VoxDroid/vrforce/internal/version.Version=<value>"
var Version = "v0.3.0-dev"
