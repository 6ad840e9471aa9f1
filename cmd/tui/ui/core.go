package ui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
)

// NewModel constructs the Bubble Tea TUI model used by cmd/tui. It accepts
// any implementation of Model (usually the framework-agnostic internal
// model) so tests can provide fakes.
func NewModel(ui Model) *TuiModel {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	l := list.New([]list.Item{}, delegate, 30, 6)
	l.Title = "SAVED PROFILES"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	m := &TuiModel{
		uiModel:   ui,
		list:      l,
		vp:        viewport.New(80, 10),
		logCh:     make(chan console.Entry, 256),
		clipboard: clipboard.WriteAll,
	}
	m.inputs = newInputs(ui.Variant())
	ui.Panel().Attach(console.SinkFunc(func(e console.Entry) {
		// the viewport re-reads the panel on every message, so a full
		// channel only delays a redraw
		select {
		case m.logCh <- e:
		default:
		}
	}))
	return m
}

// NewProgram constructs the tea.Program for the TUI.
func NewProgram(ui Model) *tea.Program {
	m := NewModel(ui)
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Init loads the last profile and starts listening for log lines.
// The form stays locked until the load reports back.
func (m *TuiModel) Init() tea.Cmd {
	m.busy = true
	return tea.Batch(m.loadCmd(), waitLog(m.logCh))
}

func (m *TuiModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return initDoneMsg{err: m.uiModel.LoadLast(context.Background())}
	}
}

// waitLog returns a command that reads one panel entry from the channel.
// The caller returns it again from Update to keep listening.
func waitLog(ch <-chan console.Entry) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(e)
	}
}

// titleFor is the header shown for a variant.
func titleFor(v config.Variant) (string, string) {
	if v == config.Wrapper {
		return "VR WRAPPER MAKER", "Bypass Steam's -vrmode none argument with a wrapper EXE"
	}
	return "VR LAUNCHER MAKER", "Creates a launcher EXE that bypasses Steam's -vrmode none"
}

// profileItem is a list entry for one profile name.
type profileItem string

func (p profileItem) Title() string       { return string(p) }
func (p profileItem) Description() string { return "" }
func (p profileItem) FilterValue() string { return string(p) }
