package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	PaneTitle      lipgloss.Style
	Pane           lipgloss.Style
	ActivePane     lipgloss.Style
	Search         lipgloss.Style
	SearchActive   lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Scroll         lipgloss.Style
	Cursor         lipgloss.Style
	Checked        lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Section        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		PaneTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Search:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SearchActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dim:            lipgloss.NewStyle().Faint(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Help:           lipgloss.NewStyle().Faint(true),
		Main:           lipgloss.NewStyle().Padding(1, 2),
		Scroll:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:         lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checked:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
		Section:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}
