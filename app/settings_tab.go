package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core"
	"github.com/vgau/boteditor/core/widgets"
	"github.com/vgau/boteditor/internal/config"
)

// SettingsTab shows the effective configuration. It is read only; edit the
// config file or BOTEDITOR_* variables instead.
type SettingsTab struct {
	cfg config.Config
}

func NewSettingsTab(cfg config.Config) *SettingsTab { return &SettingsTab{cfg: cfg} }

func (t *SettingsTab) ID() string    { return "settings" }
func (t *SettingsTab) Title() string { return "Settings" }
func (t *SettingsTab) Scope() string { return "tab:settings" }

func (t *SettingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return nil
}

func (t *SettingsTab) Build(m *core.Model) widgets.Widget {
	header := widgets.Text(strings.Join([]string{
		headerStyle.Render("Settings"),
		mutedStyle.Render("Read from " + config.Path() + " and BOTEDITOR_* variables."),
	}, "\n"))
	storage := widgets.Panel{Title: "Storage", Content: kv(
		"database", t.cfg.Database.Path,
		"bot data", t.cfg.Data.BotDataPath,
		"exports", t.cfg.Export.Dir,
	)}
	editor := widgets.Panel{Title: "Editor", Content: kv(
		"canvas", t.cfg.Editor.CanvasID,
		"timeout", t.cfg.Editor.LoadTimeout.String(),
		"log", t.cfg.Log.Path,
		"level", t.cfg.Log.Level,
	)}
	return widgets.VStack{
		Widgets: []widgets.Widget{header, widgets.HStack{Widgets: []widgets.Widget{storage, editor}, Gap: 1}},
		Heights: []int{2, 6},
		Spacing: 1,
	}
}

func kv(pairs ...string) string {
	lines := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		lines = append(lines, fmt.Sprintf("%-9s %s", pairs[i]+":", pairs[i+1]))
	}
	return strings.Join(lines, "\n")
}
