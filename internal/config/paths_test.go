package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvHome, tmp)

	d, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir(): %v", err)
	}
	if d != tmp {
		t.Fatalf("expected %s got %s", tmp, d)
	}
}

func TestDBPathEnvOverride(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv(EnvDB, tmp)

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != tmp {
		t.Fatalf("expected %s got %s", tmp, p)
	}
}

func TestProfilesPathPerVariant(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvHome, tmp)

	lp, err := ProfilesPath(Launcher)
	if err != nil {
		t.Fatalf("ProfilesPath(launcher): %v", err)
	}
	wp, err := ProfilesPath(Wrapper)
	if err != nil {
		t.Fatalf("ProfilesPath(wrapper): %v", err)
	}
	if filepath.Base(lp) != "vr_launcher_profiles.json" {
		t.Fatalf("unexpected launcher profiles file: %s", lp)
	}
	if filepath.Base(wp) != "vr_wrapper_profiles.json" {
		t.Fatalf("unexpected wrapper profiles file: %s", wp)
	}
}

func TestProfilesPathOverrideKeepsVariantsApart(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvProfiles, dir)

	lp, err := ProfilesPath(Launcher)
	if err != nil {
		t.Fatalf("ProfilesPath(launcher): %v", err)
	}
	wp, err := ProfilesPath(Wrapper)
	if err != nil {
		t.Fatalf("ProfilesPath(wrapper): %v", err)
	}
	if lp == wp {
		t.Fatalf("variants share one profiles file: %s", lp)
	}
	if lp != filepath.Join(dir, "vr_launcher_profiles.json") {
		t.Fatalf("unexpected launcher profiles file: %s", lp)
	}
	if wp != filepath.Join(dir, "vr_wrapper_profiles.json") {
		t.Fatalf("unexpected wrapper profiles file: %s", wp)
	}
}

func TestEnsureDataDirCreatesDir(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv(EnvHome, tmp)

	d, err := EnsureDataDir()
	if err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}
	if _, err := os.Stat(d); err != nil {
		t.Fatalf("expected dir %s to exist: %v", d, err)
	}
}

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{"": Launcher, "launcher": Launcher, " Wrapper ": Wrapper}
	for in, want := range cases {
		got, err := ParseVariant(in)
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseVariant(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseVariant("shim"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}
