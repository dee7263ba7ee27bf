package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"tab:a"}},
		{ID: "b", Name: "Beta", Scopes: []string{"tab:b"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel("test", nil, NewKeyRegistry(nil), reg)
	resA := reg.Search("", "tab:a", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in tab:a, got %+v", resA)
	}
	resB := reg.Search("", "tab:b", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in tab:b, got %+v", resB)
	}
}

func TestSearchToleratesTypos(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "show-settings", Name: "Show settings", Scopes: []string{"*"}},
		{ID: "show-graph", Name: "Show graph", Scopes: []string{"*"}},
	})
	m := NewModel("test", nil, nil, reg)
	res := reg.Search("setings", "tab:menu", &m)
	if len(res) != 1 || res[0].CommandID != "show-settings" {
		t.Fatalf("expected fuzzy hit on settings, got %+v", res)
	}
	if res := reg.Search("zzzzzz", "tab:menu", &m); len(res) != 0 {
		t.Fatalf("expected no hits for unrelated query, got %+v", res)
	}
}

func TestExecuteUnknownAndDisabled(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{
		{ID: "off", Name: "Off", Disabled: func(*Model) (bool, string) { return true, "" }, Execute: func(*Model) tea.Cmd { ran = true; return nil }},
	})
	m := NewModel("test", nil, nil, reg)
	msg := reg.Execute("missing", &m)()
	if st, ok := msg.(StatusMsg); !ok || st.Text != "Unknown command: missing" {
		t.Fatalf("unexpected status for unknown command: %#v", msg)
	}
	msg = reg.Execute("off", &m)()
	if st, ok := msg.(StatusMsg); !ok || st.Text != "command is disabled" {
		t.Fatalf("unexpected status for disabled command: %#v", msg)
	}
	if ran {
		t.Fatalf("disabled command must not run")
	}
}
