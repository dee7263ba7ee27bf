package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDropdownSelectsHighlightedItem(t *testing.T) {
	var picked string
	s := NewDropdownScreen(nil, "Export", []DropdownItem{
		{ID: "json", Label: "Download JSON"},
		{ID: "csv", Label: "Download CSV"},
	}, func(it DropdownItem) tea.Msg {
		picked = it.ID
		return nil
	})

	if _, _, pop := s.Update(key("j")); pop {
		t.Fatal("moving should keep the dropdown open")
	}
	s.Update(key("j")) // clamps at the last item
	if s.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", s.Cursor())
	}
	_, cmd, pop := s.Update(key("enter"))
	if !pop || cmd == nil {
		t.Fatalf("enter should pop with a command")
	}
	cmd()
	if picked != "csv" {
		t.Fatalf("picked %q, want csv", picked)
	}
}

func TestDropdownEscCancels(t *testing.T) {
	called := false
	s := NewDropdownScreen(nil, "Export", []DropdownItem{{ID: "json", Label: "Download JSON"}}, func(DropdownItem) tea.Msg {
		called = true
		return nil
	})
	_, cmd, pop := s.Update(key("esc"))
	if !pop || cmd != nil || called {
		t.Fatalf("esc should close without selecting")
	}
}

func TestDropdownFollowsRegistryBindings(t *testing.T) {
	keys := core.NewKeyRegistry([]core.KeyBinding{
		{Keys: []string{"n"}, Action: "dropdown-down", Scopes: []string{"screen:dropdown"}},
		{Keys: []string{"o"}, Action: "select", Scopes: []string{"screen:dropdown"}},
		{Keys: []string{"esc"}, Action: "close", Scopes: []string{"screen:dropdown"}},
	})
	var picked string
	s := NewDropdownScreen(keys, "Export", []DropdownItem{
		{ID: "json", Label: "Download JSON"},
		{ID: "csv", Label: "Download CSV"},
	}, func(it DropdownItem) tea.Msg {
		picked = it.ID
		return nil
	})

	s.Update(key("j"))
	if s.Cursor() != 0 {
		t.Fatalf("j is not bound here, cursor = %d", s.Cursor())
	}
	s.Update(key("n"))
	if s.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", s.Cursor())
	}
	if _, _, pop := s.Update(key("enter")); pop {
		t.Fatal("enter is not bound to select")
	}
	_, cmd, pop := s.Update(key("o"))
	if !pop || cmd == nil {
		t.Fatal("o should select")
	}
	cmd()
	if picked != "csv" {
		t.Fatalf("picked %q, want csv", picked)
	}
}

func TestDropdownViewMarksCursor(t *testing.T) {
	s := NewDropdownScreen(nil, "Export", []DropdownItem{
		{ID: "json", Label: "Download JSON"},
		{ID: "csv", Label: "Download CSV"},
	}, nil)
	view := s.View(40, 10)
	if !strings.Contains(view, "> Download JSON") || !strings.Contains(view, "  Download CSV") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestCommandPaletteExecutesSelection(t *testing.T) {
	reg := core.NewCommandRegistry([]core.Command{
		{ID: "nav:settings", Name: "Go to settings", Scopes: []string{"tab:*"}},
		{ID: "nav:faq", Name: "Go to FAQ", Scopes: []string{"tab:*"}},
	})
	m := core.NewModel("test", nil, nil, reg)
	s := NewCommandPalette(&m, "tab:menu").(*CommandScreen)

	for _, r := range "setings" {
		s.Update(key(string(r)))
	}
	opts := s.Options()
	if len(opts) == 0 || opts[0].ID != "nav:settings" {
		t.Fatalf("expected fuzzy match on settings, got %+v", opts)
	}

	_, cmd, pop := s.Update(key("enter"))
	if !pop || cmd == nil {
		t.Fatal("enter should pop with a command")
	}
	msg, ok := cmd().(core.CommandExecuteMsg)
	if !ok || msg.CommandID != "nav:settings" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestCommandPaletteDisabledReportsReason(t *testing.T) {
	reg := core.NewCommandRegistry([]core.Command{{
		ID:       "export:json",
		Name:     "Download JSON",
		Disabled: func(*core.Model) (bool, string) { return true, "no exporter" },
	}})
	m := core.NewModel("test", nil, nil, reg)
	s := NewCommandPalette(&m, "tab:export")

	_, cmd, pop := s.Update(key("enter"))
	if !pop || cmd == nil {
		t.Fatal("enter should pop with a status command")
	}
	status, ok := cmd().(core.StatusMsg)
	if !ok || status.Text != "no exporter" {
		t.Fatalf("unexpected message %#v", status)
	}
}
