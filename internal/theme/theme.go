package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles handed to the render functions.
// Rendering never reaches for ambient style state; callers pass a *Styles in.
type Styles struct {
	Header               *lipgloss.Style
	Row                  *lipgloss.Style
	RowAlt               *lipgloss.Style
	RowIndicator         *lipgloss.Style
	SelectedRow          *lipgloss.Style
	SelectedRowIndicator *lipgloss.Style
	DetailTitle          *lipgloss.Style
	DetailBody           *lipgloss.Style
	Info                 *lipgloss.Style
	Error                *lipgloss.Style
	Footer               *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("254")).Background(lipgloss.Color("25")).Bold(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("234")),
	),
	RowAlt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	),
	RowIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("240")).Bold(true),
	),
	SelectedRowIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("240")),
	),
	DetailTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("254")).Background(lipgloss.Color("25")).Bold(true),
	),
	DetailBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
