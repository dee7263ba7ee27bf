package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// Mounter is implemented by tabs that own resources tied to being the
// active tab. Mount runs when the tab becomes active, Unmount when it stops
// being active or the program quits.
type Mounter interface {
	Mount(m *Model) tea.Cmd
	Unmount(m *Model)
}

type Model struct {
	title            string
	width            int
	height           int
	tabs             []Tab
	activeTab        int
	screens          ScreenStack
	keys             *KeyRegistry
	commands         *CommandRegistry
	edit             EditCell
	status           string
	statusErr        bool
	quitting         bool
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(title string, tabs []Tab, keys *KeyRegistry, commands *CommandRegistry) Model {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	return Model{
		title:     title,
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	return m.mount(m.activeTab)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() int {
	return m.activeTab
}

func (m Model) Tabs() []Tab {
	return m.tabs
}

// SwitchTab unmounts the current tab and mounts the tab at index. Indices
// out of range and the already active index are ignored.
func (m *Model) SwitchTab(index int) tea.Cmd {
	if index < 0 || index >= len(m.tabs) || index == m.activeTab {
		return nil
	}
	m.unmount(m.activeTab)
	m.activeTab = index
	return m.mount(index)
}

func (m *Model) mount(index int) tea.Cmd {
	if index < 0 || index >= len(m.tabs) {
		return nil
	}
	if mt, ok := m.tabs[index].(Mounter); ok {
		return mt.Mount(m)
	}
	return nil
}

func (m *Model) unmount(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	if mt, ok := m.tabs[index].(Mounter); ok {
		mt.Unmount(m)
	}
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}

func (m Model) Size() (int, int) {
	return m.width, m.height
}
