package tui

import "github.com/charmbracelet/lipgloss"

// litLevel is the style slot used for highlighted cells.
const litLevel = 10

// Theme contains the visual styles of the grid watcher.
type Theme struct {
	// Cells holds one style per cell value 0-9 plus the highlight slot.
	Cells [litLevel + 1]lipgloss.Style

	Title  lipgloss.Style
	Status lipgloss.Style
	Paused lipgloss.Style
	Done   lipgloss.Style
	Help   lipgloss.Style
	Frame  lipgloss.Style
}

// DefaultTheme returns a dark-to-bright ramp over cell values.
func DefaultTheme() Theme {
	ramp := []string{"236", "238", "240", "242", "244", "246", "248", "250", "252", "254"}

	var t Theme
	for i, c := range ramp {
		t.Cells[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	t.Cells[litLevel] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")) // Bright yellow

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	t.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	t.Paused = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	t.Done = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	t.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	t.Frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return t
}
