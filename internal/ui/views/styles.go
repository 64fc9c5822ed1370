package views

import (
	"github.com/charmbracelet/lipgloss"

	"binspect/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Prompt       lipgloss.Style
	Help         lipgloss.Style
	Highlight    lipgloss.Style
	SelectionBg  lipgloss.Style
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style
	Logo         lipgloss.Style
}

// NewStyles creates a new Styles instance from the UI settings
func NewStyles(ui config.UISettings) *Styles {
	focus := lipgloss.Color(ui.FocusColor)
	border := lipgloss.Color(ui.BorderColor)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Highlight:   lipgloss.NewStyle().Foreground(focus).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),
		PanelFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(focus).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Bold(true),
		Logo:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
	}
}
