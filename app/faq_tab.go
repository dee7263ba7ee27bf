package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core"
	"github.com/vgau/boteditor/core/widgets"
)

type FAQTab struct{}

func NewFAQTab() *FAQTab { return &FAQTab{} }

func (t *FAQTab) ID() string    { return "faq" }
func (t *FAQTab) Title() string { return "FAQ" }
func (t *FAQTab) Scope() string { return "tab:faq" }

func (t *FAQTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return nil
}

func (t *FAQTab) Build(m *core.Model) widgets.Widget {
	return widgets.Text(strings.Join([]string{
		headerStyle.Render("FAQ management"),
		mutedStyle.Render("Questions and answers the bot offers outside the menu tree."),
		"",
		"FAQ entries are nodes in the menu graph. Each one carries an answer and",
		"comma separated tags the bot uses for search.",
	}, "\n"))
}
