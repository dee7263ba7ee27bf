package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core/widgets"
)

type routerTab struct {
	id       string
	hits     int
	mounts   int
	unmounts int
}

func (t *routerTab) ID() string                    { return t.id }
func (t *routerTab) Title() string                 { return "Tab " + t.id }
func (t *routerTab) Scope() string                 { return "tab:" + t.id }
func (t *routerTab) Build(m *Model) widgets.Widget { return widgets.Text("panel-" + t.id) }
func (t *routerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.hits++
	}
	return nil
}
func (t *routerTab) Mount(m *Model) tea.Cmd { t.mounts++; return nil }
func (t *routerTab) Unmount(m *Model)       { t.unmounts++ }

type fakeScreen struct{ hits int }

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return "screen:test" }
func (s *fakeScreen) View(int, int) string { return "screen" }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func TestScreenGetsKeyBeforeTab(t *testing.T) {
	tab := &routerTab{id: "r"}
	m := NewModel("test", []Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil))
	screen := &fakeScreen{}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if tab.hits != 0 {
		t.Fatalf("tab should not receive key when screen open")
	}
	if updated.screens.Len() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	tab := &routerTab{id: "r"}
	m := NewModel("test", []Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil))
	m.PushScreen(&fakeScreen{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.screens.Len() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
}

type pingMsg struct{}

type msgTab struct {
	routerTab
	pings int
}

func (t *msgTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(pingMsg); ok {
		t.pings++
	}
	return nil
}

func TestNonKeyMessageReachesTabUnderScreen(t *testing.T) {
	tab := &msgTab{routerTab: routerTab{id: "r"}}
	m := NewModel("test", []Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil))
	m.PushScreen(&fakeScreen{})

	next, _ := m.Update(pingMsg{})
	updated := next.(Model)
	if tab.pings != 1 {
		t.Fatalf("tab should receive async messages while a screen is open")
	}
	if updated.screens.Len() != 1 {
		t.Fatalf("screen should remain open")
	}
}
