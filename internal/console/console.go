// Package console implements the append-only log panel shared by the CLI
// and the terminal UI: timestamped entries tagged with a severity level.
package console

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Level is the severity/colour class of an entry.
type Level int

// Levels in the order the panel knows them.
const (
	Info Level = iota
	Dim
	OK
	Warn
	Err
	Accent
)

var levelNames = map[Level]string{
	Info: "info", Dim: "dim", OK: "ok", Warn: "warn", Err: "err", Accent: "accent",
}

func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Icon is the two-cell marker printed before the message.
func (l Level) Icon() string {
	switch l {
	case OK:
		return "✓ "
	case Warn:
		return "⚠ "
	case Err:
		return "✗ "
	case Accent:
		return "★ "
	default:
		return "  "
	}
}

// Entry is a single line in the panel.
type Entry struct {
	Time  time.Time
	Level Level
	Msg   string
}

// Stamp returns the "[HH:MM:SS] " prefix.
func (e Entry) Stamp() string {
	return "[" + e.Time.Format("15:04:05") + "] "
}

// Format renders the entry without colour.
func (e Entry) Format() string {
	return e.Stamp() + e.Level.Icon() + e.Msg
}

// Sink receives every entry appended to a Panel.
type Sink interface {
	Write(e Entry)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Entry)

// Write calls f(e).
func (f SinkFunc) Write(e Entry) { f(e) }

// Panel is an append-only feed of entries fanned out to sinks.
type Panel struct {
	mu      sync.Mutex
	entries []Entry
	sinks   []Sink
	now     func() time.Time
}

// NewPanel returns a panel forwarding to sinks.
func NewPanel(sinks ...Sink) *Panel {
	return &Panel{sinks: sinks, now: time.Now}
}

// Attach adds a sink; it only sees entries appended afterwards.
func (p *Panel) Attach(s Sink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sinks = append(p.sinks, s)
}

// Log appends msg at level.
func (p *Panel) Log(level Level, msg string) {
	p.mu.Lock()
	e := Entry{Time: p.now(), Level: level, Msg: msg}
	p.entries = append(p.entries, e)
	sinks := append([]Sink(nil), p.sinks...)
	p.mu.Unlock()

	// the panel is the user-facing channel; slog only mirrors it at debug
	slog.Debug("panel", "level", level.String(), "msg", msg)
	for _, s := range sinks {
		s.Write(e)
	}
}

// Logf is Log with formatting.
func (p *Panel) Logf(level Level, format string, args ...any) {
	p.Log(level, fmt.Sprintf(format, args...))
}

// OK logs a success line.
func (p *Panel) OK(format string, args ...any) { p.Logf(OK, format, args...) }

// Warn logs a warning line.
func (p *Panel) Warn(format string, args ...any) { p.Logf(Warn, format, args...) }

// Err logs an error line.
func (p *Panel) Err(format string, args ...any) { p.Logf(Err, format, args...) }

// Dim logs a low-importance line.
func (p *Panel) Dim(format string, args ...any) { p.Logf(Dim, format, args...) }

// Info logs a neutral line.
func (p *Panel) Info(format string, args ...any) { p.Logf(Info, format, args...) }

// Accent logs a profile-related line.
func (p *Panel) Accent(format string, args ...any) { p.Logf(Accent, format, args...) }

const sectionWidth = 38

// Section logs a "─── Title ────" divider.
func (p *Panel) Section(title string) {
	head := "─── " + title + " "
	n := sectionWidth - len([]rune(head))
	if n < 3 {
		n = 3
	}
	p.Log(Dim, head+strings.Repeat("─", n))
}

// Entries returns a copy of everything logged so far.
func (p *Panel) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Entry(nil), p.entries...)
}

// Len reports the number of entries.
func (p *Panel) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
