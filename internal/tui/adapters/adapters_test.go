package adapters

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/db"
	"github.com/VoxDroid/vrforce/internal/game"
	"github.com/VoxDroid/vrforce/internal/history"
	"github.com/VoxDroid/vrforce/internal/profile"
)

func openStore(t *testing.T) *profile.Store {
	t.Helper()
	s, err := profile.Open(filepath.Join(t.TempDir(), "vr_launcher_profiles.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestProfileAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := NewProfileAdapter(openStore(t))
	p := ProfileSummary{Name: "Subnautica", Form: Form{Folder: `D:\Games\Subnautica`, Exe: "Subnautica.exe", LauncherName: "SubnauticaLauncher.exe", Args: "-vrmode openvr"}}
	if err := a.SaveProfile(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := a.GetProfile(ctx, "Subnautica")
	if err != nil || got != p {
		t.Fatalf("get: %+v %v", got, err)
	}
	wrote, err := a.SaveProfileIfAbsent(ctx, ProfileSummary{Name: "Subnautica"})
	if err != nil || wrote {
		t.Fatalf("expected existing profile to be kept, wrote=%v err=%v", wrote, err)
	}
	if err := a.SetLastProfile(ctx, "Subnautica"); err != nil {
		t.Fatal(err)
	}
	if last, _ := a.LastProfile(ctx); last != "Subnautica" {
		t.Fatalf("last=%q", last)
	}
	if err := a.DeleteProfile(ctx, "Subnautica"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.GetProfile(ctx, "Subnautica"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := a.DeleteProfile(ctx, "Subnautica"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestActionAdapterDetect(t *testing.T) {
	dir := t.TempDir()
	for name, size := range map[string]int{"Game.exe": 3000, "UnityCrashHandler64.exe": 9000, "tool.exe": 10} {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	tool := game.New(console.NewPanel(), config.Default())

	d, err := NewActionAdapter(tool, config.Launcher).Detect(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if d.Exe != "Game.exe" || d.LauncherName != "GameLauncher.exe" {
		t.Fatalf("unexpected detection %+v", d)
	}
	d, err = NewActionAdapter(tool, config.Wrapper).Detect(context.Background(), dir)
	if err != nil || d.LauncherName != "" {
		t.Fatalf("wrapper detection should not suggest a launcher: %+v %v", d, err)
	}
}

func TestHistoryAdapterFiltersVariant(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "j.db"))
	if err != nil {
		t.Fatal(err)
	}
	repo := history.NewRepository(conn)
	defer func() { _ = repo.Close() }()
	ctx := context.Background()

	l := NewHistoryAdapter(repo, config.Launcher)
	w := NewHistoryAdapter(repo, config.Wrapper)
	if err := l.Record(ctx, Event{Action: "create", OK: true}); err != nil {
		t.Fatal(err)
	}
	if err := w.Record(ctx, Event{Action: "apply", OK: true}); err != nil {
		t.Fatal(err)
	}
	got, err := w.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Action != "apply" {
		t.Fatalf("unexpected events %+v", got)
	}
}

func TestImportExportAdapter(t *testing.T) {
	ctx := context.Background()
	src := openStore(t)
	if err := src.Put("A", profile.Profile{Folder: "/g/a", Exe: "a.exe", Args: "-x"}); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(t.TempDir(), "bundle.yaml")
	if err := NewImportExportAdapter(src).Export(ctx, dest); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := openStore(t)
	imported, skipped, err := NewImportExportAdapter(dst).Import(ctx, dest, false)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(imported) != 1 || len(skipped) != 0 || !dst.Has("A") {
		t.Fatalf("imported=%v skipped=%v", imported, skipped)
	}
	if err := NewImportExportAdapter(src).Export(ctx, dest, "missing"); err == nil {
		t.Fatal("expected error exporting unknown profile")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatal("failed export should not leave a partial file")
	}
}
