package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core"
	"github.com/vgau/boteditor/core/widgets"
)

const menuBannerTitle = "Editing menu item"

// MenuTab shows the menu structure header and, while a node is being
// edited, an inline banner for it.
type MenuTab struct{}

func NewMenuTab() *MenuTab { return &MenuTab{} }

func (t *MenuTab) ID() string    { return "menu" }
func (t *MenuTab) Title() string { return "Menu structure" }
func (t *MenuTab) Scope() string { return "tab:menu" }

func (t *MenuTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if _, editing := m.EditingNode(); !editing {
		return nil
	}
	if m.KeyRegistry().IsAction(km, "cancel-edit", t.Scope()) {
		m.SetEditingNode(nil)
		m.SetStatus("Editing cancelled")
	}
	return nil
}

func (t *MenuTab) Build(m *core.Model) widgets.Widget {
	header := widgets.Text(strings.Join([]string{
		headerStyle.Render("Menu structure"),
		mutedStyle.Render("Design the bot's main menu, submenus and attached documents in the graph editor."),
	}, "\n"))

	target, editing := m.EditingNode()
	if !editing {
		return widgets.VStack{Widgets: []widgets.Widget{header}, Heights: []int{0}}
	}
	banner := widgets.Panel{
		Title:  menuBannerTitle,
		Active: true,
		Content: strings.Join([]string{
			bannerStyle.Render(target.Text),
			mutedStyle.Render("esc/x cancel"),
		}, "\n"),
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{header, banner},
		Heights: []int{2, 4},
		Spacing: 1,
	}
}
