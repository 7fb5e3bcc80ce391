package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the drag simulator.
type Theme struct {
	Header HeaderTheme
	Rail   RailTheme
	Footer FooterTheme
	Panel  PanelTheme
}

// HeaderTheme styles the item line and the live drag status.
type HeaderTheme struct {
	Title  lipgloss.Style
	Time   lipgloss.Style
	Coarse lipgloss.Style
	Fine   lipgloss.Style
}

// RailTheme styles zoom rail ticks.
type RailTheme struct {
	Center lipgloss.Style
	Major  lipgloss.Style
	Minor  lipgloss.Style
}

// FooterTheme groups styles used by the key hints and drop history.
type FooterTheme struct {
	Help    lipgloss.Style
	History lipgloss.Style
}

// PanelTheme styles framed panels.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true),
			Time: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true),
			Coarse: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Fine: lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Italic(true),
		},
		Rail: RailTheme{
			Center: lipgloss.NewStyle().
				Foreground(lipgloss.Color("213")).
				Bold(true),
			Major: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Minor: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			History: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
		},
	}
}
