package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/vgau/boteditor/core"
	"github.com/vgau/boteditor/core/widgets"
	"github.com/vgau/boteditor/internal/service"
	"github.com/vgau/boteditor/screens"
)

var errNoExporter = errors.New("export is not configured")

// exportActions are the dropdown entries in display order.
var exportActions = []screens.DropdownItem{
	{ID: string(service.FormatJSON), Label: "Download JSON"},
	{ID: string(service.FormatCSV), Label: "Download CSV"},
}

type ExportTab struct {
	deps Deps
}

func NewExportTab(deps Deps) *ExportTab { return &ExportTab{deps: deps} }

func (t *ExportTab) ID() string    { return "export" }
func (t *ExportTab) Title() string { return "Export / Import" }
func (t *ExportTab) Scope() string { return "tab:export" }

func (t *ExportTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.KeyRegistry().IsAction(km, "open-export-menu", t.Scope()) {
		m.PushScreen(t.dropdown(m))
	}
	return nil
}

func (t *ExportTab) dropdown(m *core.Model) core.Screen {
	return screens.NewDropdownScreen(m.KeyRegistry(), "Export data", exportActions, func(it screens.DropdownItem) tea.Msg {
		return runExport(t.deps, service.Format(it.ID))
	})
}

func (t *ExportTab) Build(m *core.Model) widgets.Widget {
	exportDir := t.deps.Config.Export.Dir
	if exportDir == "" {
		exportDir = "."
	}
	return widgets.Text(strings.Join([]string{
		headerStyle.Render("Export / Import"),
		mutedStyle.Render("Download the menu as the bot_data.json the bot reads, or as a flat CSV."),
		"",
		buttonStyle.Render("Export data ▾") + "  " + mutedStyle.Render("enter"),
		"",
		"Files are written to " + exportDir + ".",
		"Import a bot_data.json with: boteditor import FILE",
	}, "\n"))
}

// exportCmd runs an export off the update loop and reports through the
// status bar.
func exportCmd(deps Deps, format service.Format) tea.Cmd {
	return func() tea.Msg { return runExport(deps, format) }
}

func runExport(deps Deps, format service.Format) tea.Msg {
	log := deps.logger().WithField("format", format)
	if deps.Exporter == nil {
		return core.StatusMsg{Text: errNoExporter.Error(), IsErr: true}
	}
	path, err := deps.Exporter.Export(deps.context(), format)
	if err != nil {
		log.WithError(err).Error("export failed")
		return core.StatusMsg{Text: fmt.Sprintf("Export failed: %v", err), IsErr: true}
	}
	log.WithFields(logrus.Fields{"path": path}).Info("export written")
	return core.StatusMsg{Text: "Exported " + path}
}
