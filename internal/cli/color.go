package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	todayStyle    = lipgloss.NewStyle().Reverse(true).Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	holidayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	fastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#AF87FF"))
	weekendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

func Title(text string) string   { return titleStyle.Render(text) }
func Header(text string) string  { return headerStyle.Render(text) }
func Holiday(text string) string { return holidayStyle.Render(text) }
func Fast(text string) string    { return fastStyle.Render(text) }
func Muted(text string) string   { return mutedStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
