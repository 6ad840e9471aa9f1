package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// ensureViewportSize resizes the log viewport preserving YOffset.
// It avoids a full reset of scrolling when size hasn't changed.
func (m *TuiModel) ensureViewportSize(width, height int) {
	if m.vp.Width != width || m.vp.Height != height {
		oldOff := m.vp.YOffset
		m.vp = viewport.New(width, height)
		m.vp.YOffset = oldOff
	}
}

// layout sizes the list and the log to the window.
func (m *TuiModel) layout() {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	listH := len(m.list.Items()) + 2
	if listH > 6 {
		listH = 6
	}
	m.list.SetSize(w, listH)
	for i := range m.inputs {
		m.inputs[i].input.Width = w - 4
	}
	// header, labels and inputs, hint box and help line
	used := 3 + listH + 2*len(m.inputs) + 6
	h := m.height - used
	if h < 5 {
		h = 5
	}
	m.ensureViewportSize(w, h)
}

// refreshLog re-renders the panel into the viewport and follows the tail.
func (m *TuiModel) refreshLog() {
	entries := m.uiModel.Panel().Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, renderEntry(e, m.vp.Width))
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	m.vp.GotoBottom()
}
