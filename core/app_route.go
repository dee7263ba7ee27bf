package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case TabSwitchMsg:
		cmd := m.SwitchTab(msg.Index)
		return m, cmd
	case EditNodeMsg:
		m.SetEditingNode(msg.Target)
		if msg.Target != nil {
			m.SetStatus("Editing: " + msg.Target.Text)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		if top := m.screens.Top(); top != nil {
			return m.updateTopScreen(msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			return m.quit()
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		if m.keys.IsAction(msg, "next-tab", scope) && len(m.tabs) > 0 {
			cmd := m.SwitchTab((m.activeTab + 1) % len(m.tabs))
			return m, cmd
		}
		if m.keys.IsAction(msg, "prev-tab", scope) && len(m.tabs) > 0 {
			cmd := m.SwitchTab((m.activeTab - 1 + len(m.tabs)) % len(m.tabs))
			return m, cmd
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
				cmd := m.SwitchTab(i)
				return m, cmd
			}
		}
		if len(m.tabs) > 0 {
			cmd := m.tabs[m.activeTab].Update(&m, msg)
			return m, cmd
		}
		return m, nil
	}

	// Non-key messages reach both the overlay and the active tab, so async
	// results keep flowing while a screen is open.
	var cmds []tea.Cmd
	if top := m.screens.Top(); top != nil {
		next, cmd := m.updateTopScreen(msg)
		m = next.(Model)
		cmds = append(cmds, cmd)
	}
	if len(m.tabs) > 0 {
		cmds = append(cmds, m.tabs[m.activeTab].Update(&m, msg))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateTopScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.screens.Top()
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return m, cmd
	}
	if next != nil {
		m.screens.Replace(next)
	}
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.unmount(m.activeTab)
	m.quitting = true
	return m, tea.Quit
}
