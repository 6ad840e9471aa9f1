// Package config resolves where vrforce keeps its files and loads user settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
)

// Environment overrides, mostly used by tests and portable installs.
const (
	EnvHome     = "VRFORCE_HOME"
	EnvDB       = "VRFORCE_DB"
	EnvProfiles = "VRFORCE_PROFILES"
)

// AppName is the directory name used under the platform config root.
const AppName = "vrforce"

// DataDir returns the directory used to store vrforce data.
func DataDir() (string, error) {
	if v := os.Getenv(EnvHome); v != "" {
		return v, nil
	}
	d := configdir.LocalConfig(AppName)
	if d == "" || d == AppName {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "."+AppName), nil
	}
	return d, nil
}

// EnsureDataDir returns DataDir after making sure it exists.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return d, nil
}

// DBPath returns the full path to the SQLite operation journal.
func DBPath() (string, error) {
	if v := os.Getenv(EnvDB); v != "" {
		return v, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "vrforce.db"), nil
}

// ProfilesPath returns the JSON profile document for a variant, e.g.
// vr_launcher_profiles.json. $VRFORCE_PROFILES names the directory holding
// the documents; each variant keeps its own file there.
func ProfilesPath(variant Variant) (string, error) {
	name := fmt.Sprintf("vr_%s_profiles.json", variant)
	if v := os.Getenv(EnvProfiles); v != "" {
		return filepath.Join(v, name), nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, name), nil
}

// SettingsPath returns the default settings file location.
func SettingsPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}
