package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the paint UI chrome. Grid cell
// colors come from the palette package.
type Theme struct {
	Title  TitleTheme
	Footer FooterTheme
}

// TitleTheme styles the heading line above the grid.
type TitleTheme struct {
	Name  lipgloss.Style
	Field lipgloss.Style
}

// FooterTheme groups styles used by the status line and key help.
type FooterTheme struct {
	Status  lipgloss.Style
	Tooltip lipgloss.Style
	Error   lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Title: TitleTheme{
			Name:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Field: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Tooltip: lipgloss.NewStyle().Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
