package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core"
)

type DropdownItem struct {
	ID    string
	Label string
}

// DropdownScreen is a small action menu anchored to a button.
type DropdownScreen struct {
	title    string
	items    []DropdownItem
	cursor   int
	keys     *core.KeyRegistry
	onSelect func(DropdownItem) tea.Msg
}

// NewDropdownScreen matches keys against the "screen:dropdown" bindings of
// keys, or of DefaultKeyBindings when keys is nil.
func NewDropdownScreen(keys *core.KeyRegistry, title string, items []DropdownItem, onSelect func(DropdownItem) tea.Msg) *DropdownScreen {
	return &DropdownScreen{title: title, items: items, keys: registryOrDefault(keys), onSelect: onSelect}
}

func (s *DropdownScreen) Title() string { return s.title }
func (s *DropdownScreen) Scope() string { return "screen:dropdown" }

func (s *DropdownScreen) Cursor() int { return s.cursor }

func (s *DropdownScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	scope := s.Scope()
	switch {
	case s.keys.IsAction(keyMsg, "close", scope):
		return s, nil, true
	case s.keys.IsAction(keyMsg, "dropdown-down", scope):
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case s.keys.IsAction(keyMsg, "dropdown-up", scope):
		if s.cursor > 0 {
			s.cursor--
		}
	case s.keys.IsAction(keyMsg, "select", scope):
		if len(s.items) == 0 {
			return s, nil, true
		}
		item := s.items[s.cursor]
		if s.onSelect != nil {
			return s, func() tea.Msg { return s.onSelect(item) }, true
		}
		return s, nil, true
	}
	return s, nil, false
}

func (s *DropdownScreen) View(width, height int) string {
	lines := []string{s.title, ""}
	if len(s.items) == 0 {
		lines = append(lines, "  No actions")
	}
	for i, it := range s.items {
		prefix := "  "
		if i == s.cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+it.Label)
	}
	lines = append(lines, "", "Enter select. Esc cancel.")
	return core.ClipHeight(strings.Join(lines, "\n"), max(4, height))
}

func registryOrDefault(keys *core.KeyRegistry) *core.KeyRegistry {
	if keys != nil {
		return keys
	}
	return core.NewKeyRegistry(core.DefaultKeyBindings())
}
