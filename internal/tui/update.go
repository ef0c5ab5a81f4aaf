package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SimulationCompleteMsg:
		m.running = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.err = nil
			m.result = msg.Result
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.focusSlider(m.focused - 1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.focusSlider(m.focused + 1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.sliders[m.focused].Decrement()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.sliders[m.focused].Increment()
		return m, nil

	case key.Matches(msg, m.keys.Run):
		if m.running {
			return m, nil
		}
		m.params = m.planFromSliders()
		m.running = true
		return m, runSimulationCmd(m.engine, m.params)
	}
	return m, nil
}

func (m *Model) focusSlider(idx int) {
	if idx < 0 {
		idx = sliderCount - 1
	}
	if idx >= sliderCount {
		idx = 0
	}
	m.sliders[m.focused].IsFocused = false
	m.focused = idx
	m.sliders[m.focused].IsFocused = true
}
