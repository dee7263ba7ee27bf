package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgau/boteditor/core"
	"github.com/vgau/boteditor/core/widgets"
	"github.com/vgau/boteditor/internal/graphmod"
)

// GraphTab hosts the external graph editor. Mounting starts a bootstrap
// against a fresh canvas; unmounting cancels it.
type GraphTab struct {
	boot *graphmod.Bootstrap
	deps Deps
}

func NewGraphTab(deps Deps) *GraphTab {
	opts := graphmod.Options{
		CanvasID: deps.Config.Editor.CanvasID,
		Timeout:  deps.Config.Editor.LoadTimeout,
		Logger:   deps.logger(),
	}
	return &GraphTab{boot: graphmod.NewBootstrap(deps.Loader, opts), deps: deps}
}

func (t *GraphTab) ID() string    { return "graph" }
func (t *GraphTab) Title() string { return "Menu graph" }

func (t *GraphTab) Scope() string {
	if t.boot.State() == graphmod.StateReady {
		return "tab:graph:ready"
	}
	return "tab:graph"
}

func (t *GraphTab) Bootstrap() *graphmod.Bootstrap { return t.boot }

func (t *GraphTab) Mount(m *core.Model) tea.Cmd {
	return t.boot.Mount(t.deps.context())
}

func (t *GraphTab) Unmount(m *core.Model) {
	t.boot.Unmount()
}

func (t *GraphTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case graphmod.LoadedMsg:
		if t.boot.Resolve(msg) && t.boot.State() == graphmod.StateReady {
			m.SetStatus("Graph editor ready")
		}
		return nil
	case graphmod.NodeActivatedMsg:
		return core.EditNodeCmd(&core.EditTarget{ID: msg.ID, Text: msg.Text})
	case tea.KeyMsg:
		if t.boot.State() != graphmod.StateReady {
			return nil
		}
		return t.boot.Canvas().HandleKey(msg)
	}
	return nil
}

func (t *GraphTab) Build(m *core.Model) widgets.Widget {
	header := widgets.Text(strings.Join([]string{
		headerStyle.Render("Menu graph"),
		mutedStyle.Render("Nodes are menu items, documents and FAQ entries. Activate a node to edit it."),
	}, "\n"))
	return widgets.VStack{
		Widgets: []widgets.Widget{header, widgets.WidgetFunc(t.renderContainer)},
		Heights: []int{2, 0},
		Spacing: 1,
	}
}

// renderContainer draws the canvas at the full container size with the
// loading indicator centered over it while visible.
func (t *GraphTab) renderContainer(width, height int) string {
	canvas := t.boot.Canvas()
	if canvas == nil {
		return widgets.Fit("", width, height)
	}
	base := canvas.Render(width, height)
	ind := t.boot.Indicator()
	if ind == nil || !ind.Visible() {
		return widgets.Fit(base, width, height)
	}
	style := indicatorStyle
	if t.boot.State() == graphmod.StateFailed {
		style = errorStyle
	}
	return widgets.Overlay(base, style.Render(ind.Text()), width, height)
}
