package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update routes messages into the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.err = nil
		return m, simulateCmd(m.engine, m.config)

	case SimulationCompleteMsg:
		m.result = msg.Result
		m.loading = false
		m.rowOffset = 0
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.rowOffset--
	case key.Matches(msg, m.keys.Down):
		m.rowOffset++
	case key.Matches(msg, m.keys.PageUp):
		m.rowOffset -= m.visibleRows()
	case key.Matches(msg, m.keys.PageDown):
		m.rowOffset += m.visibleRows()

	case key.Matches(msg, m.keys.Switch):
		if m.result != nil && len(m.result.Stressed) > 0 {
			if m.view == viewBaseline {
				m.view = viewStressed
			} else {
				m.view = viewBaseline
			}
			m.rowOffset = 0
		}

	case key.Matches(msg, m.keys.Exit):
		m.showExit = !m.showExit

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, loadConfigCmd(m.configPath)
	}

	m.clampOffset()
	return m, nil
}

// visibleRows is how many table rows fit under the chrome.
func (m Model) visibleRows() int {
	rows := m.height - 10
	if m.showExit {
		rows -= 11
	}
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *Model) clampOffset() {
	limit := len(m.series()) - m.visibleRows()
	if limit < 0 {
		limit = 0
	}
	if m.rowOffset > limit {
		m.rowOffset = limit
	}
	if m.rowOffset < 0 {
		m.rowOffset = 0
	}
}
