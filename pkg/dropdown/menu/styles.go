package menu

import "github.com/charmbracelet/lipgloss"

// Colors shared by the default styles.
var (
	Primary      = lipgloss.Color("212")
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")
	BgSecondary  = lipgloss.Color("235")
)

// Styles bundles the visual styling of the toggle and the popup menu.
type Styles struct {
	Toggle        lipgloss.Style
	ToggleOpen    lipgloss.Style
	ToggleFocused lipgloss.Style

	Menu        lipgloss.Style
	Item        lipgloss.Style
	ItemFocused lipgloss.Style
	ItemHovered lipgloss.Style
	ItemMuted   lipgloss.Style
	Cursor      lipgloss.Style
	Filter      lipgloss.Style
}

// DefaultStyles returns the standard look.
func DefaultStyles() Styles {
	return Styles{
		Toggle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2),

		ToggleOpen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2),

		ToggleFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("245")).
			Padding(0, 2),

		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Background(BgSecondary).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		ItemFocused: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true),

		ItemHovered: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")),

		ItemMuted: lipgloss.NewStyle().
			Foreground(Muted),

		Cursor: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),

		Filter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
	}
}
