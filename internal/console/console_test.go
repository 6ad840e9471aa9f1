package console

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func fixedPanel(sinks ...Sink) *Panel {
	p := NewPanel(sinks...)
	p.now = func() time.Time { return time.Date(2024, 5, 1, 13, 4, 5, 0, time.UTC) }
	return p
}

func TestPanelAppendsAndFansOut(t *testing.T) {
	var got []Entry
	p := fixedPanel(SinkFunc(func(e Entry) { got = append(got, e) }))

	p.OK("created %s", "GameLauncher.exe")
	p.Err("boom")

	if p.Len() != 2 || len(got) != 2 {
		t.Fatalf("expected 2 entries, panel=%d sink=%d", p.Len(), len(got))
	}
	if got[0].Format() != "[13:04:05] ✓ created GameLauncher.exe" {
		t.Fatalf("unexpected format: %q", got[0].Format())
	}
	if got[1].Level != Err || got[1].Format() != "[13:04:05] ✗ boom" {
		t.Fatalf("unexpected entry: %+v", got[1])
	}
}

func TestEntriesIsACopy(t *testing.T) {
	p := fixedPanel()
	p.Info("one")
	es := p.Entries()
	es[0].Msg = "changed"
	if p.Entries()[0].Msg != "one" {
		t.Fatalf("Entries must not alias internal state")
	}
}

func TestSectionDivider(t *testing.T) {
	p := fixedPanel()
	p.Section("Status Check")
	e := p.Entries()[0]
	if e.Level != Dim {
		t.Fatalf("section should be dim, got %s", e.Level)
	}
	if !strings.HasPrefix(e.Msg, "─── Status Check ─") {
		t.Fatalf("unexpected divider: %q", e.Msg)
	}
	if n := len([]rune(e.Msg)); n != sectionWidth {
		t.Fatalf("divider width %d, want %d", n, sectionWidth)
	}
}

func TestAttachSeesOnlyLaterEntries(t *testing.T) {
	p := fixedPanel()
	p.Info("before")
	n := 0
	p.Attach(SinkFunc(func(Entry) { n++ }))
	p.Info("after")
	if n != 1 {
		t.Fatalf("expected 1 entry after attach, got %d", n)
	}
}

func TestColorSinkPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	p := fixedPanel(NewColorSink(&buf))
	p.Warn("Launcher not found: X.exe")
	p.Dim("Compiling...")

	want := "[13:04:05] ⚠ Launcher not found: X.exe\n[13:04:05]   Compiling...\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestErrEntryNotMirroredAtDefaultLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var logged bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelInfo})))

	fixedPanel().Err("Folder not found: %s", "D:\\Games\\Missing")
	if logged.Len() != 0 {
		t.Fatalf("panel error leaked into slog: %q", logged.String())
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug})))
	fixedPanel().Err("boom")
	if !strings.Contains(logged.String(), "msg=boom") {
		t.Fatalf("expected debug mirror, got %q", logged.String())
	}
}
