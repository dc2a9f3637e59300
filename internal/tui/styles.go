// Package tui provides the interactive guidebook browser.
package tui

import "github.com/charmbracelet/lipgloss"

// Trail palette
var (
	Moss   = lipgloss.Color("#4E7D3A")
	Bark   = lipgloss.Color("#6D4C41")
	Stone  = lipgloss.Color("#8D8F8A")
	Mist   = lipgloss.Color("#E8EDE4")
	Danger = lipgloss.Color("#C62828")
)

// Styles holds every lipgloss style the browser renders with.
type Styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	TabGap    lipgloss.Style
	Header    lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Subtitle  lipgloss.Style
	Empty     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the trail palette styles.
func DefaultStyles() Styles {
	tab := lipgloss.NewStyle().Padding(0, 2).Foreground(Stone)
	return Styles{
		Tab:       tab,
		ActiveTab: tab.Foreground(Mist).Background(Moss).Bold(true),
		TabGap:    lipgloss.NewStyle().Foreground(Stone),
		Header:    lipgloss.NewStyle().Foreground(Bark).Bold(true).MarginTop(1),
		Item:      lipgloss.NewStyle().PaddingLeft(2),
		Selected:  lipgloss.NewStyle().PaddingLeft(1).Foreground(Moss).Bold(true).SetString("›"),
		Subtitle:  lipgloss.NewStyle().PaddingLeft(4).Foreground(Stone),
		Empty:     lipgloss.NewStyle().PaddingLeft(2).Foreground(Stone).Italic(true),
		Status:    lipgloss.NewStyle().Foreground(Moss),
		Error:     lipgloss.NewStyle().Foreground(Danger),
		Help:      lipgloss.NewStyle().Foreground(Stone),
	}
}
