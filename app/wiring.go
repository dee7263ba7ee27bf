package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core"
	"github.com/vgau/boteditor/internal/service"
	"github.com/vgau/boteditor/screens"
)

// NewModel assembles the shell with the five sections, default key bindings
// and the command palette.
func NewModel(deps Deps) core.Model {
	title := deps.Config.UI.Title
	if title == "" {
		title = "Bot Admin"
	}
	m := core.NewModel(title, Tabs(deps), core.NewKeyRegistry(core.DefaultKeyBindings()), core.NewCommandRegistry(nil))
	ConfigureModel(&m, deps)
	return m
}

func ConfigureModel(m *core.Model, deps Deps) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandPalette(model, scope)
	}
	RegisterCommands(m.CommandRegistry(), m.Tabs(), deps)
}

func RegisterCommands(reg *core.CommandRegistry, tabs []core.Tab, deps Deps) {
	for i, tab := range tabs {
		title := tab.Title()
		reg.Register(core.Command{
			ID:          "nav:" + tab.ID(),
			Name:        "Go to " + title,
			Description: "Show the " + title + " section",
			Scopes:      []string{"tab:*"},
			Execute: func(m *core.Model) tea.Cmd {
				return tea.Batch(m.SwitchTab(i), core.StatusCmd(title))
			},
		})
	}

	noExporter := func(*core.Model) (bool, string) {
		if deps.Exporter == nil {
			return true, errNoExporter.Error()
		}
		return false, ""
	}
	reg.Register(core.Command{
		ID:          "export:json",
		Name:        "Download JSON",
		Description: "Write bot_data.json to the export directory",
		Scopes:      []string{"tab:*"},
		Execute:     func(*core.Model) tea.Cmd { return exportCmd(deps, service.FormatJSON) },
		Disabled:    noExporter,
	})
	reg.Register(core.Command{
		ID:          "export:csv",
		Name:        "Download CSV",
		Description: "Write the menu as CSV to the export directory",
		Scopes:      []string{"tab:*"},
		Execute:     func(*core.Model) tea.Cmd { return exportCmd(deps, service.FormatCSV) },
		Disabled:    noExporter,
	})
	reg.Register(core.Command{
		ID:          "edit:cancel",
		Name:        "Cancel editing",
		Description: "Clear the menu item being edited",
		Scopes:      []string{"tab:*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.SetEditingNode(nil)
			return core.StatusCmd("Editing cancelled")
		},
		Disabled: func(m *core.Model) (bool, string) {
			if _, ok := m.EditingNode(); !ok {
				return true, "nothing is being edited"
			}
			return false, ""
		},
	})
}
