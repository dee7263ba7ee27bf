package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	panelBorder       = lipgloss.Color("#6c7086")
	panelBorderActive = lipgloss.Color("#89b4fa")
	panelTitle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
)

// Panel is a rounded box with the title embedded in the top border.
type Panel struct {
	Title   string
	Content string
	Active  bool
}

func (p Panel) Render(width, height int) string {
	if width < 4 || height < 3 {
		return Fit(p.Content, width, height)
	}
	color := panelBorder
	if p.Active {
		color = panelBorderActive
	}
	border := lipgloss.NewStyle().Foreground(color)
	inner := width - 2

	title := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		title = " " + ansi.Truncate(t, max(1, inner-3), "") + " "
	}
	dashes := max(0, inner-ansi.StringWidth(title)-1)
	top := border.Render("╭─") + panelTitle.Render(title) + border.Render(strings.Repeat("─", dashes)+"╮")
	if title == "" {
		top = border.Render("╭" + strings.Repeat("─", inner) + "╮")
	}

	body := splitToLines(p.Content, height-2)
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for _, line := range body {
		rows = append(rows, border.Render("│")+padRightANSI(" "+line, inner)+border.Render("│"))
	}
	rows = append(rows, border.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(rows, "\n")
}
