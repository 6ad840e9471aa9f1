package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/tui/sanitize"
)

var (
	colAccent = lipgloss.Color("#64dcaa")
	colText   = lipgloss.Color("#d0d0e0")
	colDim    = lipgloss.Color("#555570")
	colRed    = lipgloss.Color("#e05050")
	colYellow = lipgloss.Color("#e0b83c")
	colBlue   = lipgloss.Color("#6090e0")
	colPurple = lipgloss.Color("#a080e0")
	colBorder = lipgloss.Color("#1e1e2e")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colAccent)
	subStyle   = lipgloss.NewStyle().Foreground(colDim)
	labelStyle = lipgloss.NewStyle().Foreground(colDim).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(colYellow).Border(lipgloss.RoundedBorder()).BorderForeground(colBorder).Padding(0, 1)
	logStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colBorder)
	helpStyle  = lipgloss.NewStyle().Foreground(colDim)
	promptBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colPurple).Padding(0, 1)
	focusMark  = lipgloss.NewStyle().Foreground(colAccent).Render("▌")
)

// levelStyle colours a log line like the severity tags of the log panel.
func levelStyle(l console.Level) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch l {
	case console.OK:
		return s.Foreground(colAccent)
	case console.Warn:
		return s.Foreground(colYellow)
	case console.Err:
		return s.Foreground(colRed)
	case console.Dim:
		return s.Foreground(colDim)
	case console.Accent:
		return s.Foreground(colPurple)
	case console.Info:
		return s.Foreground(colBlue)
	}
	return s.Foreground(colText)
}

// renderEntry renders one panel entry: a dim timestamp, then the icon and
// message in the level colour, wrapped to width.
func renderEntry(e console.Entry, width int) string {
	stamp := e.Stamp()
	body := e.Level.Icon() + sanitize.Text(e.Msg)
	textW := width - utf8.RuneCountInString(stamp)
	lines := wrapText(body, textW)
	var b strings.Builder
	for i, ln := range lines {
		if i == 0 {
			b.WriteString(subStyle.Render(stamp))
		} else {
			b.WriteString(strings.Repeat(" ", utf8.RuneCountInString(stamp)))
		}
		b.WriteString(levelStyle(e.Level).Render(ln))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// simple word-wrap to produce lines no longer than width (approximate by rune count)
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	out := []string{}
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		// keep the icon's leading spaces
		lead := para[:len(para)-len(strings.TrimLeft(para, " "))]
		cur := lead + words[0]
		for _, w := range words[1:] {
			if utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(w) > width {
				out = append(out, cur)
				cur = w
			} else {
				cur = cur + " " + w
			}
		}
		out = append(out, cur)
	}
	return out
}

// View renders the screen.
func (m *TuiModel) View() string {
	var b strings.Builder
	title, sub := titleFor(m.uiModel.Variant())
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(subStyle.Render(sub) + "\n\n")

	lst := m.list.View()
	if m.focus == 0 {
		lst = lipgloss.JoinHorizontal(lipgloss.Top, focusMark, lst)
	}
	b.WriteString(lst + "\n")

	for i, in := range m.inputs {
		mark := " "
		if m.focus == i+1 {
			mark = focusMark
		}
		b.WriteString(labelStyle.Render(in.label) + "\n")
		b.WriteString(mark + in.input.View() + "\n")
	}

	if m.uiModel.Variant() == config.Launcher {
		b.WriteString(labelStyle.Render("STEAM LAUNCH OPTIONS  (ctrl+y to copy)") + "\n")
		b.WriteString(hintStyle.Render(m.hint) + "\n")
	}

	switch m.prompt {
	case promptSave:
		b.WriteString(promptBox.Render(m.promptInput.View()+"\n"+helpStyle.Render("enter save • esc cancel")) + "\n")
	case promptDelete:
		b.WriteString(promptBox.Render("Delete '"+m.promptName+"'? (y/N)") + "\n")
	}

	b.WriteString(helpStyle.Render(m.helpLine()) + "\n")
	b.WriteString(labelStyle.Render("LOG") + "\n")
	b.WriteString(logStyle.Render(m.vp.View()))
	if m.status != "" {
		b.WriteString("\n" + subStyle.Render(m.status))
	}
	return b.String()
}

func (m *TuiModel) helpLine() string {
	primary, secondary := "create", "remove"
	if m.uiModel.Variant() == config.Wrapper {
		primary, secondary = "apply", "undo"
	}
	return "ctrl+r " + primary + " • ctrl+u " + secondary + " • ctrl+t status • ctrl+o detect • " +
		"ctrl+s save • ctrl+l load • ctrl+d delete • tab focus • esc quit"
}
