package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	sidebarTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)
	sidebarRuleStyle  = lipgloss.NewStyle().Foreground(colorBorder)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorTabOff)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
