package nameutil

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate("  "); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := Validate("Subnautica"); err != nil {
		t.Fatalf("unexpected error for valid name: %v", err)
	}
	if err := Validate("bad\x00name"); err == nil {
		t.Fatalf("expected error for control bytes")
	}
	if err := Validate(string([]byte{0xff, 0xff})); err == nil {
		t.Fatalf("expected error for invalid utf8")
	}
	if err := Validate(Placeholder); err == nil {
		t.Fatalf("expected placeholder to be rejected")
	}
}

func TestClean(t *testing.T) {
	if s, changed := Clean("Half\x00Life"); s != "HalfLife" || !changed {
		t.Fatalf("expected NUL removed: got %q changed=%v", s, changed)
	}
	if s, changed := Clean(" a \u200B b "); s != "a  b" || !changed {
		t.Fatalf("expected zero-width removed and trimmed: got %q changed=%v", s, changed)
	}
	if s, changed := Clean("Beat Saber"); s != "Beat Saber" || changed {
		t.Fatalf("clean name should be untouched: %q %v", s, changed)
	}
}

func TestFromFolder(t *testing.T) {
	cases := map[string]string{
		`C:\Steam\steamapps\common\Subnautica`:  "Subnautica",
		`C:\Steam\steamapps\common\Subnautica\`: "Subnautica",
		"/games/Beat Saber/":                    "Beat Saber",
		"":                                      "",
	}
	for in, want := range cases {
		if got := FromFolder(in); got != want {
			t.Errorf("FromFolder(%q) = %q, want %q", in, got, want)
		}
	}
}
