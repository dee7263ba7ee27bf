package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vgau/boteditor/core/widgets"
)

const sidebarWidth = 26

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(status)-lipgloss.Height(footer))
	body := ""
	if bodyHeight > 0 {
		body = m.renderBody(max(1, m.width), bodyHeight)
	}
	view := strings.Join([]string{body, status, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) renderBody(width, height int) string {
	side := min(sidebarWidth, width/3)
	mainWidth := width - side - 1
	sidebar := renderSidebar(m, side, height)
	var main string
	if len(m.tabs) > 0 && mainWidth > 0 {
		tab := m.tabs[m.activeTab]
		content := tab.Build(&m).Render(max(1, mainWidth-4), max(1, height-2))
		main = widgets.Panel{Title: tab.Title(), Content: content, Active: m.screens.Top() == nil}.Render(mainWidth, height)
	}
	out := renderSplit(sidebar, main, side, mainWidth, height)
	if top := m.screens.Top(); top != nil {
		out = widgets.RenderPopup(out, top.View(max(20, width-16), max(6, height-8)), width, height)
	}
	return out
}

// renderSplit joins the fixed-width sidebar and the main panel row by row.
func renderSplit(left, right string, leftWidth, rightWidth, height int) string {
	l := strings.Split(widgets.Fit(left, leftWidth, height), "\n")
	r := strings.Split(widgets.Fit(right, max(0, rightWidth), height), "\n")
	rows := make([]string, height)
	for i := 0; i < height; i++ {
		rows[i] = l[i] + " "
		if i < len(r) {
			rows[i] += r[i]
		}
	}
	return strings.Join(rows, "\n")
}

func renderSidebar(m Model, width, height int) string {
	lines := []string{
		sidebarTitleStyle.Render(ansi.Truncate(m.title, max(1, width-2), "")),
		sidebarRuleStyle.Render(strings.Repeat("─", max(1, width))),
	}
	for i, t := range m.tabs {
		label := ansi.Truncate(t.Title(), max(1, width-4), "")
		if i == m.activeTab {
			lines = append(lines, activeTabStyle.Width(width).Render("▸ "+label))
			continue
		}
		lines = append(lines, inactiveTabStyle.Width(width).Render("  "+label))
	}
	return widgets.Fit(strings.Join(lines, "\n"), width, height)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
