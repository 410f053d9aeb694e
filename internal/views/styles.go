package views

import "github.com/charmbracelet/lipgloss"

var (
	wallpaperStyle = lipgloss.NewStyle().Background(lipgloss.Color("23")).Foreground(lipgloss.Color("30"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	titleFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("18"))
	titleBlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("240"))
	frameFocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	frameBlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	windowBodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))

	taskbarStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("237"))
	startButtonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	startPressedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Background(lipgloss.Color("0"))
	entryActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("18"))
	entryStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("239"))

	menuStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	menuHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	menuHighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("18"))
	menuMatchStyle     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("11"))
	menuHintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	iconStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	iconSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("18"))

	bootCyanStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	bootMagentaStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	bootYellowStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("11")).Padding(0, 2)
	bootDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
