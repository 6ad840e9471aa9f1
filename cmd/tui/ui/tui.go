package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/nameutil"
	modelpkg "github.com/VoxDroid/vrforce/internal/tui/model"
)

// TuiModel is the Bubble Tea model used by cmd/tui.
type TuiModel struct {
	uiModel Model
	list    list.Model
	inputs  []formInput
	vp      viewport.Model

	width  int
	height int

	// focus: 0 = profile list, 1.. = inputs
	focus int
	// busy is set while an action runs; the form is locked meanwhile
	busy bool
	// quitting is set by ctrl+c during an action; the program exits once
	// the action reports back
	quitting bool
	hint     string
	status   string

	prompt      promptKind
	promptInput textinput.Model
	promptName  string

	logCh     chan console.Entry
	clipboard func(string) error
}

type promptKind int

const (
	promptNone promptKind = iota
	promptSave
	promptDelete
)

// Messages
type initDoneMsg struct{ err error }
type logMsg console.Entry
type actionDoneMsg struct {
	name string
	err  error
}

// Update handles messages and key presses.
func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.refreshLog()
		return m, nil
	case initDoneMsg:
		m.busy = false
		m.sync()
		if m.quitting {
			return m, m.quit()
		}
		m.refreshLog()
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil
	case logMsg:
		m.refreshLog()
		return m, waitLog(m.logCh)
	case actionDoneMsg:
		m.busy = false
		m.sync()
		if m.quitting {
			return m, m.quit()
		}
		m.refreshLog()
		m.status = ""
		if msg.err != nil {
			m.status = fmt.Sprintf("%s failed", msg.name)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *TuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		if m.busy {
			m.quitting = true
			m.status = "quitting when the running action finishes"
			return m, nil
		}
		return m, m.quit()
	}
	if m.prompt != promptNone {
		return m.handlePrompt(msg)
	}

	switch msg.String() {
	case "esc":
		if m.busy {
			m.status = "an action is running"
			return m, nil
		}
		return m, m.quit()
	case "tab":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab":
		m.setFocus(m.focus - 1)
		return m, nil
	}

	if m.busy {
		return m, nil
	}
	switch msg.String() {
	case "ctrl+r":
		return m, m.run("primary action", m.uiModel.Primary)
	case "ctrl+u":
		return m, m.run("secondary action", m.uiModel.Secondary)
	case "ctrl+t":
		return m, m.run("status", m.uiModel.Status)
	case "ctrl+o":
		folder := m.formValues().Folder
		return m, m.run("auto-detect", func(ctx context.Context) error {
			return m.uiModel.Browse(ctx, folder)
		})
	case "ctrl+l":
		return m, m.loadSelected()
	case "ctrl+s":
		m.openSavePrompt()
		return m, textinput.Blink
	case "ctrl+d":
		name := m.selectedName()
		if name == "" || name == nameutil.Placeholder {
			return m, m.run("delete", func(ctx context.Context) error {
				return m.uiModel.DeleteProfile(ctx, name)
			})
		}
		m.prompt = promptDelete
		m.promptName = name
		return m, nil
	case "ctrl+y":
		if err := m.uiModel.CopyHint(m.clipboard); err != nil && !errors.Is(err, modelpkg.ErrNoHint) {
			m.status = err.Error()
		}
		m.refreshLog()
		return m, nil
	case "enter":
		if m.focus == 0 {
			return m, m.loadSelected()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.list, cmd = m.list.Update(msg)
		if name := m.selectedName(); name != "" {
			m.uiModel.Select(name)
		}
		return m, cmd
	}
	i := m.focus - 1
	m.inputs[i].input, cmd = m.inputs[i].input.Update(msg)
	return m, cmd
}

func (m *TuiModel) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.prompt {
	case promptDelete:
		name := m.promptName
		m.prompt = promptNone
		switch msg.String() {
		case "y", "Y":
			return m, m.run("delete", func(ctx context.Context) error {
				return m.uiModel.DeleteProfile(ctx, name)
			})
		}
		return m, nil
	case promptSave:
		switch msg.String() {
		case "esc":
			m.prompt = promptNone
			return m, nil
		case "enter":
			name := m.promptInput.Value()
			m.prompt = promptNone
			if name == "" {
				return m, nil
			}
			return m, m.run("save", func(ctx context.Context) error {
				return m.uiModel.SaveProfile(ctx, name)
			})
		}
		var cmd tea.Cmd
		m.promptInput, cmd = m.promptInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *TuiModel) openSavePrompt() {
	m.pushForm()
	ti := textinput.New()
	ti.Prompt = "Profile name: "
	ti.CharLimit = 128
	ti.SetValue(m.uiModel.SuggestName())
	ti.CursorEnd()
	ti.Focus()
	m.promptInput = ti
	m.prompt = promptSave
}

func (m *TuiModel) loadSelected() tea.Cmd {
	name := m.selectedName()
	return m.run("load", func(ctx context.Context) error {
		return m.uiModel.LoadProfile(ctx, name)
	})
}

// run pushes the form into the model and runs fn off the UI goroutine.
func (m *TuiModel) run(name string, fn func(context.Context) error) tea.Cmd {
	m.pushForm()
	m.busy = true
	m.status = name + "..."
	return func() tea.Msg {
		return actionDoneMsg{name: name, err: fn(context.Background())}
	}
}

func (m *TuiModel) quit() tea.Cmd {
	m.pushForm()
	if err := m.uiModel.Close(context.Background()); err != nil {
		m.status = err.Error()
	}
	return tea.Quit
}

// sync refreshes the profile list and the inputs from the model.
func (m *TuiModel) sync() {
	names := m.uiModel.Profiles()
	items := make([]list.Item, 0, len(names))
	sel := 0
	for i, n := range names {
		items = append(items, profileItem(n))
		if n == m.uiModel.Selected() {
			sel = i
		}
	}
	m.list.SetItems(items)
	m.list.Select(sel)
	m.pullForm()
}

func (m *TuiModel) selectedName() string {
	if it, ok := m.list.SelectedItem().(profileItem); ok {
		return string(it)
	}
	return ""
}
