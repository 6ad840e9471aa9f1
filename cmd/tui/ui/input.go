package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/tui/adapters"
)

// field identifies one form input.
type field int

const (
	fieldFolder field = iota
	fieldExe
	fieldLauncher
	fieldArgs
)

// formInput is a labelled text input bound to a form field.
type formInput struct {
	field field
	label string
	input textinput.Model
}

func newInputs(v config.Variant) []formInput {
	mk := func(f field, label, placeholder string) formInput {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = placeholder
		ti.CharLimit = 512
		ti.Width = 60
		return formInput{field: f, label: label, input: ti}
	}
	if v == config.Wrapper {
		return []formInput{
			mk(fieldFolder, "GAME FOLDER  (ctrl+o to auto-detect)", `C:\Steam\steamapps\common\Game`),
			mk(fieldExe, "GAME EXE  (auto-detected)", "Game.exe"),
			mk(fieldArgs, "FORCED LAUNCH ARGUMENTS", config.DefaultArgs),
		}
	}
	return []formInput{
		mk(fieldFolder, "GAME FOLDER  (ctrl+o to auto-detect)", `C:\Steam\steamapps\common\Game`),
		mk(fieldExe, "GAME EXE  (auto-detected, this will NOT be renamed)", "Game.exe"),
		mk(fieldLauncher, "LAUNCHER EXE NAME  (will be created next to game EXE)", "GameLauncher.exe"),
		mk(fieldArgs, "FORCED LAUNCH ARGUMENTS", config.DefaultArgs),
	}
}

// formValues reads the inputs into a form.
func (m *TuiModel) formValues() adapters.Form {
	f := m.uiModel.Form()
	for _, in := range m.inputs {
		v := in.input.Value()
		switch in.field {
		case fieldFolder:
			f.Folder = v
		case fieldExe:
			f.Exe = v
		case fieldLauncher:
			f.LauncherName = v
		case fieldArgs:
			f.Args = v
		}
	}
	return f
}

// pushForm copies the inputs into the model before an action.
func (m *TuiModel) pushForm() { m.uiModel.SetForm(m.formValues()) }

// pullForm copies the model's form back into the inputs after an action
// may have normalized or replaced it.
func (m *TuiModel) pullForm() {
	f := m.uiModel.Form()
	for i := range m.inputs {
		var v string
		switch m.inputs[i].field {
		case fieldFolder:
			v = f.Folder
		case fieldExe:
			v = f.Exe
		case fieldLauncher:
			v = f.LauncherName
		case fieldArgs:
			v = f.Args
		}
		m.inputs[i].input.SetValue(v)
	}
	m.hint = m.uiModel.Hint()
}

// focusCount is the profile list plus one stop per input.
func (m *TuiModel) focusCount() int { return len(m.inputs) + 1 }

// setFocus moves focus; 0 is the profile list.
func (m *TuiModel) setFocus(i int) {
	n := m.focusCount()
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j+1 == m.focus {
			m.inputs[j].input.Focus()
		} else {
			m.inputs[j].input.Blur()
		}
	}
}
